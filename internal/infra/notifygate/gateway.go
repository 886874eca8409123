package notifygate

import "context"

//go:generate mockgen -source=gateway.go -destination=mock.go -package=notifygate

// DeliveryGateway is the notification delivery boundary: schedule a payload
// to be delivered at an instant, or cancel a previously issued schedule by
// its opaque id. Delivery and user interaction come back through the
// callback endpoint, not through this interface.
type DeliveryGateway interface {
	Schedule(ctx context.Context, req *ScheduleRequest) (*ScheduleResponse, error)
	Cancel(ctx context.Context, id string) error
}
