package domain

import "github.com/mariankubacka/latte-art-bookings-praha/pkg/types"

// RegistrationFilter narrows registration reads. From/To bound the course
// date range inclusively; nil means no bound on that side. Email filters on
// the normalized participant email.
type RegistrationFilter struct {
	From  *types.DateString
	To    *types.DateString
	Email *string
}
