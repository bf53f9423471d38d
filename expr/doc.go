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
Package expr parses and evaluates formula text.

The grammar, lowest binding first:

	comparison   =  !=  <  >  <=  >=
	additive     +  -  &
	multiplicative  *  /  %
	power        ^  (right-associative)
	unary        -  +  !
	primary      number, 'string', {Field}, NAME(args...), true, false, (expr)

{Field} references resolve against the record at evaluation time and form
the formula's dependency set. Parsing is a single forward pass with no
backtracking; parse errors carry the offending position. Valid results are
memoized in a bounded LRU cache (Parser); every cache retrieval yields an
independent dependency slice and failed parses are never cached.

Evaluation walks the AST against a record under one of two NULL regimes:
the Codd regime propagates NULL through arithmetic and yields UNKNOWN from
comparisons over absence, the legacy regime coerces absence to zero values
first. IF, AND and OR short-circuit; everything else evaluates eagerly and
dispatches to the operators catalog.
*/
package expr
