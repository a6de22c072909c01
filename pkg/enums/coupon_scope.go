package enums

import "fmt"

// CouponScope limits which kind of checkout a coupon applies to.
type CouponScope string

const (
	CouponScopeAll     CouponScope = "all"
	CouponScopeService CouponScope = "service"
	CouponScopeProduct CouponScope = "product"
)

var validCouponScopes = []CouponScope{
	CouponScopeAll,
	CouponScopeService,
	CouponScopeProduct,
}

func (s CouponScope) String() string {
	return string(s)
}

func (s CouponScope) IsValid() bool {
	for _, candidate := range validCouponScopes {
		if candidate == s {
			return true
		}
	}
	return false
}

func ParseCouponScope(value string) (CouponScope, error) {
	for _, candidate := range validCouponScopes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid coupon scope %q", value)
}
