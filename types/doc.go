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
Package types defines the value universe shared by every layer of the formula
engine: the tagged Value union over {number, text, boolean, date, collection,
null}, Codd's two absence markers (A-mark, I-mark), the three-valued logic
UNKNOWN truth value, and multi-observation cells with dominant-value
resolution.

Records handed to the engine are plain map[string]interface{} mappings. A slot
may hold a raw Go scalar, a Value, or an *ObservationCell; ResolveField
normalizes all three to a single Value before formula evaluation proceeds.
*/
package types
