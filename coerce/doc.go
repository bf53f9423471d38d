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
Package coerce implements total conversions between the members of the value
universe. Every conversion returns a value of the target type (or NULL under
the Codd regime) and never fails: unparseable numeric text coerces to the
regime sentinel, 0 under legacy and NULL under Codd.

The package also declares the coercion matrix the chain validator consults
when deciding whether one operator's output can feed another's input. The
matrix deliberately contains only lossless, never-failing paths; conversions
that can hit a sentinel (text→number, text→date) are available as functions
but are not declared chainable.
*/
package coerce
