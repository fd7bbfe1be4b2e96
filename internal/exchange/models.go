package exchange

type Condition string

const (
	ConditionNewInBox      Condition = "New (In Box)"
	ConditionBuiltNoBox    Condition = "Built (No Box)"
	ConditionBuiltWithBox  Condition = "Built (With Box)"
	ConditionCustomPainted Condition = "Custom Painted"
)

// GuestAuthor signs every comment made from the unauthenticated flow.
const GuestAuthor = "Guest Pilot"

type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

type Post struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Have        string    `json:"have"`
	Want        string    `json:"want"`
	Condition   Condition `json:"condition"`
	Date        string    `json:"date"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	Comments    []Comment `json:"comments"`
	Status      Status    `json:"status"`
}

func (p Post) clone() Post {
	if p.Comments != nil {
		cs := make([]Comment, len(p.Comments))
		copy(cs, p.Comments)
		p.Comments = cs
	}
	return p
}

// PostForm is the create-post payload as submitted; Condition defaults to New (In Box).
type PostForm struct {
	Author      string    `json:"author" validate:"notblank"`
	Have        string    `json:"have" validate:"notblank"`
	Want        string    `json:"want" validate:"notblank"`
	Condition   Condition `json:"condition" validate:"oneof='New (In Box)' 'Built (No Box)' 'Built (With Box)' 'Custom Painted'"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
}

func seedPosts() []Post {
	return []Post{
		{
			ID: "ex-1", Author: "Amuro Ray", Have: "MG RX-78-2 Ver 3.0", Want: "RG Nu Gundam",
			Condition: ConditionNewInBox, Date: "2023-10-25", Comments: []Comment{}, Status: StatusOpen,
		},
		{
			ID: "ex-2", Author: "Char Aznable", Have: "HG Zaku II Red Comet", Want: "MG Sazabi",
			Condition: ConditionBuiltWithBox, Date: "2023-10-26", Comments: []Comment{}, Status: StatusOpen,
		},
	}
}
