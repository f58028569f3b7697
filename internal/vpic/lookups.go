package vpic

import (
	"context"
	"fmt"
	"net/url"

	"github.com/h0rv/carpick/internal/domain"
)

type makeEntry struct {
	MakeID          int    `json:"MakeId"`
	MakeName        string `json:"MakeName"`
	VehicleTypeID   int    `json:"VehicleTypeId"`
	VehicleTypeName string `json:"VehicleTypeName"`
}

type modelEntry struct {
	MakeID    int    `json:"Make_ID"`
	MakeName  string `json:"Make_Name"`
	ModelID   int    `json:"Model_ID"`
	ModelName string `json:"Model_Name"`
}

// GetMakesForVehicleType lists every make registered for a vehicle type
// (e.g., "car"), in the order the service returns them.
func (c *Client) GetMakesForVehicleType(ctx context.Context, vehicleType string) ([]domain.Make, error) {
	u := fmt.Sprintf("%s/GetMakesForVehicleType/%s?format=json", c.baseURL, url.PathEscape(vehicleType))

	entries, err := getJSON[makeEntry](ctx, c, "GetMakesForVehicleType", u)
	if err != nil {
		return nil, err
	}

	makes := make([]domain.Make, 0, len(entries))
	for _, e := range entries {
		makes = append(makes, domain.Make{ID: e.MakeID, Name: e.MakeName})
	}
	return makes, nil
}

// GetModelsForMake lists the models of a make, in the order the service returns them.
// The make name is path-escaped, so names such as "AC/DELCO" are safe.
func (c *Client) GetModelsForMake(ctx context.Context, makeName string) ([]domain.Model, error) {
	u := fmt.Sprintf("%s/GetModelsForMake/%s?format=json", c.baseURL, url.PathEscape(makeName))

	entries, err := getJSON[modelEntry](ctx, c, "GetModelsForMake", u)
	if err != nil {
		return nil, err
	}

	models := make([]domain.Model, 0, len(entries))
	for _, e := range entries {
		models = append(models, domain.Model{
			ID:       e.ModelID,
			Name:     e.ModelName,
			MakeID:   e.MakeID,
			MakeName: e.MakeName,
		})
	}
	return models, nil
}

// GetMakes lists the makes of the client's configured vehicle type.
// The list does not depend on the model year.
func (c *Client) GetMakes(ctx context.Context) ([]domain.Make, error) {
	return c.GetMakesForVehicleType(ctx, c.vehicleType)
}

// GetModels lists the models of a make.
func (c *Client) GetModels(ctx context.Context, makeName string) ([]domain.Model, error) {
	return c.GetModelsForMake(ctx, makeName)
}
