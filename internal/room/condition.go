package room

import "slices"

// Condition decides whether an option is offered, given the items the player
// currently holds. Implementations must not mutate items.
type Condition interface {
	Evaluate(items []string) bool
}

// ConditionFunc adapts a plain function to Condition.
type ConditionFunc func(items []string) bool

func (f ConditionFunc) Evaluate(items []string) bool { return f(items) }

// Always is satisfied for every inventory.
var Always Condition = ConditionFunc(func([]string) bool { return true })

// HasItem is satisfied once name has been picked up.
func HasItem(name string) Condition {
	return ConditionFunc(func(items []string) bool {
		return slices.Contains(items, name)
	})
}

// LacksItem is satisfied as long as name has not been picked up.
func LacksItem(name string) Condition {
	return Not(HasItem(name))
}

// Not negates c.
func Not(c Condition) Condition {
	return ConditionFunc(func(items []string) bool {
		return !c.Evaluate(items)
	})
}

// All is satisfied when every condition is. All() with no arguments is
// satisfied.
func All(conds ...Condition) Condition {
	return ConditionFunc(func(items []string) bool {
		for _, c := range conds {
			if !c.Evaluate(items) {
				return false
			}
		}
		return true
	})
}
