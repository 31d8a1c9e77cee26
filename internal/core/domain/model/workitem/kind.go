package workitem

// Kind distinguishes the two work item flavours at compile time.
type Kind interface {
	OrderKind | ServiceRequestKind
	Name() string
}

// OrderKind marks a direct order of a catalog service.
type OrderKind struct{}

func (OrderKind) Name() string { return "order" }

// ServiceRequestKind marks a client's request for a service.
type ServiceRequestKind struct{}

func (ServiceRequestKind) Name() string { return "service request" }

type (
	Order          = WorkItem[OrderKind]
	ServiceRequest = WorkItem[ServiceRequestKind]
)

// KindName returns the human-readable name of K.
func KindName[K Kind]() string {
	var k K
	return k.Name()
}
