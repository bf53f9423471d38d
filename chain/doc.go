/*
 * Copyright 2025 The FieldFormula Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package chain validates and executes operator pipelines built outside of
formula text, for example a user assembling operator calls in a builder UI.

CanChain and ValidateChain check that each operator's output type can feed
the next operator's first input, directly or through a declared coercion
path; ValidateChain reports every broken link with its position. CanSimplify
detects algebraic eliminations (identity, absorbing, idempotent — checked in
that order, first match wins). Compose builds an evaluator over an ordered
step list where arguments may back-reference earlier step results, and
ExecuteWithTrace runs the same pipeline while recording per-step arguments,
simplifications and intermediate results. Chain failures are advisory
reports, never panics.
*/
package chain
