package openrtb2

// 3.2.8 Object: Publisher
type Publisher struct {
	ID     *string
	Name   *string
	Cat    []string
	Domain *string

	Extension
}

// 3.2.10 Object: Producer
//
// This object defines the producer of the content in which the ad will be shown.
// This is particularly useful when the content is syndicated and may be
// distributed through different publishers.
type Producer struct {
	ID     *string
	Name   *string
	Cat    []string
	Domain *string

	Extension
}
