package openrtb2

// 3.2.9 Object: Content
//
// This object describes the content in which the impression will appear, which
// may be syndicated or non-syndicated content.
type Content struct {
	ID                 *string
	Episode            *int64
	Title              *string
	Series             *string
	Season             *string
	Producer           *Producer
	URL                *string
	Cat                []string
	VideoQuality       *VideoQuality
	Context            *ContentContext
	ContentRating      *string
	UserRating         *string
	QAGMediaRating     *QAGMediaRating
	Keywords           *string
	LiveStream         *int64
	SourceRelationship *int64
	Len                *int64
	Language           *string
	Embeddable         *int64

	Extension
}
