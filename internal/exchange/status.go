package exchange

type Status string

const (
	StatusOpen    Status = "Open"
	StatusPending Status = "Pending"
	StatusClosed  Status = "Closed"
)

var validNext = map[Status]map[Status]bool{
	StatusOpen:    {StatusPending: true, StatusClosed: true},
	StatusPending: {StatusOpen: true, StatusClosed: true},
	StatusClosed:  {},
}

func (s Status) Valid() bool {
	_, ok := validNext[s]
	return ok
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}
