package operators

// The built-in catalog is registered once at process start; after init the
// registry is read-only shared state and needs no synchronization.
func init() {
	registerMathOperators()
	registerComparisonOperators()
	registerLogicOperators()
	registerStringOperators()
	registerAggregateOperators()
	registerDateTimeOperators()
	registerTypeCheckOperators()
	registerNullOperators()
	registerExprOperator()
}
