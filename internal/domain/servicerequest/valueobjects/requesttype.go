package valueobjects

import "fmt"

// RequestType categorizes a customer service request.
type RequestType string

const (
	TypeGasLeak            RequestType = "gas_leak"
	TypeBillingInquiry     RequestType = "billing_inquiry"
	TypeNewService         RequestType = "new_service"
	TypeServiceChange      RequestType = "service_change"
	TypeMeterReading       RequestType = "meter_reading"
	TypePaymentArrangement RequestType = "payment_arrangement"
	TypePropertyDamage     RequestType = "property_damage"
	TypeEmergency          RequestType = "emergency"
	TypeOther              RequestType = "other"
)

var validRequestTypes = map[RequestType]bool{
	TypeGasLeak:            true,
	TypeBillingInquiry:     true,
	TypeNewService:         true,
	TypeServiceChange:      true,
	TypeMeterReading:       true,
	TypePaymentArrangement: true,
	TypePropertyDamage:     true,
	TypeEmergency:          true,
	TypeOther:              true,
}

func (t RequestType) String() string {
	return string(t)
}

func (t RequestType) IsValid() bool {
	return validRequestTypes[t]
}

// IsUrgent reports whether the request type needs immediate dispatch.
func (t RequestType) IsUrgent() bool {
	return t == TypeGasLeak || t == TypeEmergency
}

func NewRequestType(s string) (RequestType, error) {
	t := RequestType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid request type: %s", s)
	}
	return t, nil
}
