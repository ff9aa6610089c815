package user

import "strings"

type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketNBFC     Bucket = "nbfc_admin"
	BucketMerchant Bucket = "merchant"
	BucketCustomer Bucket = "customer"
	BucketSuper    Bucket = "super_admin"
)

// Valid reports whether b is one of the role tabs the user list offers.
// The empty bucket means all.
func (b Bucket) Valid() bool {
	switch b {
	case "", BucketAll, BucketNBFC, BucketMerchant, BucketCustomer, BucketSuper:
		return true
	}
	return false
}

// Matches reports whether r falls into bucket b. Buckets other than the
// synonym groups fall back to an exact role match.
func (b Bucket) Matches(r Role) bool {
	switch b {
	case BucketAll, "":
		return true
	case BucketNBFC:
		return r.IsNBFC()
	case BucketCustomer:
		return r.IsCustomer()
	default:
		return Role(b) == r
	}
}

func SelectBucket(users []User, b Bucket) []User {
	if b == BucketAll || b == "" {
		return users
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		if b.Matches(u.Role) {
			out = append(out, u)
		}
	}
	return out
}

func haystack(u User) string {
	parts := make([]string, 0, 6)
	for _, f := range []string{u.FullName, u.Username, u.Email, u.Phone, u.Mobile, u.Address} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// SearchFilter keeps users whose searchable fields contain query, case-insensitively.
// A blank query returns users as is.
func SearchFilter(users []User, query string) []User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		if strings.Contains(haystack(u), q) {
			out = append(out, u)
		}
	}
	return out
}

// Filter applies the bucket first, then the search query.
func Filter(users []User, b Bucket, query string) []User {
	return SearchFilter(SelectBucket(users, b), query)
}
