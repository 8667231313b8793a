package openrtb2

// 3.2.7 Object: App
//
// This object should be included if the ad supported content is a non-browser
// application as opposed to a website.
type App struct {
	ID            *string
	Name          *string
	Bundle        *string
	Domain        *string
	StoreURL      *string
	Cat           []string
	SectionCat    []string
	PageCat       []string
	Ver           *string
	PrivacyPolicy *int64
	Paid          *int64
	Publisher     *Publisher
	Content       *Content
	Keywords      *string

	Extension
}
