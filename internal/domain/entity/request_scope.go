package entity

// RequestScope is the set of requests a principal may read.
// Exactly one of the shapes applies:
//   - All: every request.
//   - RequesterID set: requests created by that actor.
//   - FoodBankID set: requests assigned to the bank, plus pending requests in District.
type RequestScope struct {
	All         bool
	RequesterID *int64
	FoodBankID  *int64
	District    string
}

// Matches reports whether the request is inside the scope.
func (s RequestScope) Matches(r *Request) bool {
	switch {
	case s.All:
		return true
	case s.RequesterID != nil:
		return r.RequesterID == *s.RequesterID
	case s.FoodBankID != nil:
		if r.IsAssignedTo(*s.FoodBankID) {
			return true
		}

		return r.Status == StatusPending && r.District == s.District
	default:
		return false
	}
}
