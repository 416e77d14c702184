package domain

var (
	MessageSuccessComputeDelivery = "delivery plan computed"
	MessageSuccessConfirmDelivery = "delivery confirmed & inventory updated"

	MessageFailedComputeDelivery = "failed to compute delivery plan"
	MessageFailedConfirmDelivery = "failed to confirm delivery"
)

type (
	DeliveryRequest struct {
		Day          string   `json:"day" validate:"required,datetime=2006-01-02"`
		Weather      string   `json:"weather" validate:"omitempty,max=32"`
		SafetyFactor *float64 `json:"safety_factor" validate:"omitempty,gt=0"`
	}

	// DeliveryResponse carries only Confirmed and FinalPlan when the day was already confirmed.
	DeliveryResponse struct {
		Confirmed      bool               `json:"confirmed"`
		DateType       string             `json:"date_type,omitempty"`
		Weather        string             `json:"weather,omitempty"`
		BasePlan       map[string]float64 `json:"base_plan,omitempty"`
		LeftoversToday map[string]float64 `json:"leftovers_today,omitempty"`
		FinalPlan      map[string]float64 `json:"final_plan"`
	}

	ConfirmDeliveryRequest struct {
		Day   string             `json:"day" validate:"required,datetime=2006-01-02"`
		Items map[string]float64 `json:"items" validate:"required,min=1,dive,keys,required,endkeys"`
	}
)
