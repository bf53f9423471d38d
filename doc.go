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
Package fieldformula is a typed formula engine for computing derived values
over tabular records.

A formula is text in a small expression language: arithmetic, comparison,
string concatenation, function calls against an operator catalog, and field
references in braces. Records are plain map[string]interface{} values whose
slots may hold scalars, typed Values or multi-observation cells.

	engine := fieldformula.New()
	result := engine.Evaluate("{Revenue} - {Cost}", map[string]interface{}{
		"Revenue": 1000,
		"Cost":    700,
	})
	// result.Value == 300, result.Dependencies == ["Revenue", "Cost"]

Two NULL regimes are supported. The default follows Codd's three-valued
logic: arithmetic over an absent operand yields NULL and comparisons yield
UNKNOWN. The opt-in legacy regime coerces absence to zero values instead:

	engine := fieldformula.New(fieldformula.WithLegacyNulls())

Sub-packages: operators (the catalog with type signatures and algebraic
properties), expr (parser, LRU parse cache, evaluator), chain (pipeline
validation, algebraic simplification and traced composition), coerce (total
type conversions), types (the value universe) and logger.
*/
package fieldformula
