package returns

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// ItemCondition describes the state of a returned item as declared by the
// customer. It is informational: the refund amount does not depend on it.
type ItemCondition int

const (
	// ConditionUnknown represents an invalid or undefined condition.
	ConditionUnknown ItemCondition = iota

	// ConditionNew indicates the item is unopened or unused.
	ConditionNew

	// ConditionUsed indicates the item shows signs of use. This is the
	// default when the customer declares nothing.
	ConditionUsed

	// ConditionDamaged indicates the item arrived or became damaged.
	ConditionDamaged
)

// getConditionStrings returns a map of only valid ItemCondition values.
func getConditionStrings() map[ItemCondition]string {
	//nolint:exhaustive // ConditionUnknown is intentionally excluded as it's invalid
	return map[ItemCondition]string{
		ConditionNew:     "new",
		ConditionUsed:    "used",
		ConditionDamaged: "damaged",
	}
}

// ParseItemCondition converts a wire name into an ItemCondition.
// The empty string maps to ConditionUsed, the declared default.
func ParseItemCondition(s string) (ItemCondition, error) {
	if s == "" {
		return ConditionUsed, nil
	}
	for condition, str := range getConditionStrings() {
		if str == s {
			return condition, nil
		}
	}
	return ConditionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"condition",
		fmt.Errorf("%q is not a valid item condition", s),
	)
}

// Validate checks if the ItemCondition value is valid.
func (c ItemCondition) Validate() error {
	if _, ok := getConditionStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"condition",
			fmt.Errorf("%d is not a valid condition", c),
		)
	}
	return nil
}

// String returns the lowercase wire name of the condition.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (c ItemCondition) String() string {
	if str, ok := getConditionStrings()[c]; ok {
		return str
	}
	return "unknown"
}
