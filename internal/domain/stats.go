package domain

// Stats is the operator's overview of stored records
type Stats struct {
	Media    int
	Channels int
	Users    int
}
