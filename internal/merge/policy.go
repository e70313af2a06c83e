package merge

// DomainPolicy decides what happens to an entry whose only match is a
// same-domain sibling in the target
type DomainPolicy string

// Domain-match policies
const (
	// PolicyInsertAndFlag inserts the entry and lists it for review
	PolicyInsertAndFlag DomainPolicy = "insert-and-flag"
	// PolicyInsertOnly inserts the entry without listing it
	PolicyInsertOnly DomainPolicy = "insert-only"
	// PolicySuppress lists the entry for review and does not insert it
	PolicySuppress DomainPolicy = "suppress"
)

// DefaultDomainPolicy is the policy used when none is configured
const DefaultDomainPolicy = PolicyInsertAndFlag

// ParseDomainPolicy parses a policy name; empty selects the default
func ParseDomainPolicy(s string) (DomainPolicy, error) {
	switch DomainPolicy(s) {
	case "":
		return DefaultDomainPolicy, nil
	case PolicyInsertAndFlag, PolicyInsertOnly, PolicySuppress:
		return DomainPolicy(s), nil
	default:
		return "", &PolicyError{Value: s}
	}
}

func (p DomainPolicy) outcome() (kind OutcomeKind, insert, flagged bool) {
	switch p {
	case PolicyInsertOnly:
		return OutcomeDomainMatchAdded, true, false
	case PolicySuppress:
		return OutcomeDomainMatchSuppressed, false, true
	default:
		return OutcomeDomainMatchAdded, true, true
	}
}
