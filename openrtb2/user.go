package openrtb2

// 3.2.13 Object: User
//
// This object contains information known or derived about the human user of the
// device.
type User struct {
	ID       *string
	BuyerUID *string
	Yob      *int64

	// Gender is "M" male, "F" female, "O" known to be other.
	Gender     *string
	Keywords   *string
	CustomData *string
	Geo        *Geo
	Data       []Data

	Extension
}

// 3.2.14 Object: Data
type Data struct {
	ID      *string
	Name    *string
	Segment []Segment

	Extension
}

// 3.2.15 Object: Segment
type Segment struct {
	ID    *string
	Name  *string
	Value *string

	Extension
}

// 3.2.16 Object: Regs
//
// This object contains any legal, governmental, or industry regulations in force
// for the request.
type Regs struct {
	COPPA *int64

	Extension
}
