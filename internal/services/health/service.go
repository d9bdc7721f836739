package health

// Service reports where the page reads its résumé document from.
type Service struct {
	source   string
	location string
}

// Status is the health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Source   string `json:"source"`
	Location string `json:"location"`
}

// NewService constructs a new health service.
func NewService(source, location string) *Service {
	return &Service{source: source, location: location}
}

// Status returns a simple health payload. It does not read the document:
// availability of the data is reported per page view.
func (s *Service) Status() Status {
	return Status{OK: true, Source: s.source, Location: s.location}
}
