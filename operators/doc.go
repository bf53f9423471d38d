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
Package operators is the catalog of atomic operators the formula engine can
evaluate. Each Descriptor declares an operator's identity, type signature,
arity bounds, algebraic properties (with identity and absorbing elements
where they exist) and its evaluation rule.

Operator families:

	math        ADD, SUBTRACT, MULTIPLY, DIVIDE, MOD, POWER, NEGATE, ABS, ROUND, FLOOR, CEIL, SQRT
	comparison  EQUALS, NOT_EQUALS, LESS_THAN, GREATER_THAN, LESS_EQUAL, GREATER_EQUAL
	logic       AND, OR, NOT, IF, EXPR
	string      CONCAT, UPPER, LOWER, TRIM, LEN, SUBSTRING, REPLACE, CONTAINS, STARTS_WITH, ENDS_WITH
	aggregate   SUM, AVG, MIN, MAX, COUNT
	datetime    NOW, TODAY, YEAR, MONTH, DAY, HOUR, MINUTE, SECOND, DATE_ADD, DATE_DIFF
	typecheck   IS_NULL, IS_NOT_NULL, IS_NUMERIC, IS_STRING, IS_BOOL, IS_DATE, IS_ARRAY, IS_UNKNOWN, IS_A_MARK, IS_I_MARK
	null        IS_DISTINCT, NULL_EQ, NULL_IF, COALESCE, A_MARK, I_MARK, TRI_AND, TRI_OR, TRI_NOT, TRI_EQ, SUM_TRACKED, AVG_TRACKED, COUNT_TRACKED

The null family is exact regardless of the active NULL regime; everything
else consults the regime carried in the evaluation Context. The registry is
populated in init and treated as immutable afterwards. ExprBridge exposes the
whole catalog to expr-lang/expr for free-form host expressions.
*/
package operators
