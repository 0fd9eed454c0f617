package response

import (
	"slot-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LocationResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

type LocationsResponse struct {
	Success   bool               `json:"success"`
	Locations []LocationResponse `json:"locations"`
}

type PackageResponse struct {
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Popular  bool     `json:"popular"`
	Features []string `json:"features"`
}

type PackagesResponse struct {
	Success  bool              `json:"success"`
	Location string            `json:"location"`
	Contact  string            `json:"contact"`
	Address  string            `json:"address"`
	Packages []PackageResponse `json:"packages"`
}

func FromLocationViews(views []queries.LocationView) (*LocationsResponse, error) {
	locations := make([]LocationResponse, 0, len(views))
	if err := copier.Copy(&locations, views); err != nil {
		return nil, err
	}
	return &LocationsResponse{Success: true, Locations: locations}, nil
}

func FromLocationPackagesView(v *queries.LocationPackagesView) (*PackagesResponse, error) {
	res := PackagesResponse{
		Success:  true,
		Location: v.Name,
		Contact:  v.Contact,
		Address:  v.Address,
	}
	if err := copier.CopyWithOption(&res.Packages, v.Packages, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &res, nil
}
