package openrtb2

// 3.2.6 Object: Site
//
// This object should be included if the ad supported content is a website as
// opposed to a non-browser application.
type Site struct {
	ID            *string
	Name          *string
	Domain        *string
	Cat           []string
	SectionCat    []string
	PageCat       []string
	Page          *string
	Ref           *string
	Search        *string
	Mobile        *int64
	PrivacyPolicy *int64
	Publisher     *Publisher
	Content       *Content
	Keywords      *string

	Extension
}
