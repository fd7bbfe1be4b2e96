package session

type Faction string

const (
	FactionEFSF Faction = "EFSF"
	FactionZEON Faction = "ZEON"
)

const DefaultRank = "Recruit"

type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Faction    Faction `json:"faction"`
	Rank       string  `json:"rank"`
	JoinedDate string  `json:"joinedDate"`
}

// Record is a directory entry. The passcode is stored in plain text: this is
// a mock directory and offers no protection at all.
type Record struct {
	User
	Password string `json:"password"`
}

type RegisterForm struct {
	Name            string  `json:"name" validate:"notblank"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required"`
	ConfirmPassword string  `json:"confirmPassword"`
	Faction         Faction `json:"faction" validate:"oneof=EFSF ZEON"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
