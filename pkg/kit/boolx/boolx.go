package boolx

func RunIfTrue(predicate bool, action func()) {
	if predicate && action != nil {
		action()
	}
}

func Negate(b bool) bool {
	return !b
}
