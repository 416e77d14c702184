package domain

var (
	MessageSuccessGetLeftovers    = "leftovers retrieved successfully"
	MessageSuccessUpsertLeftovers = "leftovers upserted"

	MessageFailedGetLeftovers    = "failed to retrieve leftovers"
	MessageFailedUpsertLeftovers = "failed to upsert leftovers"
)

type UpsertLeftoversRequest struct {
	Day       string             `json:"day" validate:"required,datetime=2006-01-02"`
	Leftovers map[string]float64 `json:"leftovers" validate:"required,min=1,dive,keys,required,endkeys"`
}
