package services

import (
	"fmt"

	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
	"limoapi/internal/utils"
)

// SeedService loads reference data (trip types, vehicles, services),
// skipping records that already exist.
type SeedService struct {
	Vehicles  repositories.VehicleRepository
	Services  repositories.ServiceRepository
	TripTypes repositories.TripTypeRepository
	RequestID string
}

// SeedResult counts how many records each seed pass created.
type SeedResult struct {
	TripTypes int `json:"tripTypes"`
	Vehicles  int `json:"vehicles"`
	Services  int `json:"services"`
}

func (s SeedService) Run() (SeedResult, error) {
	var res SeedResult

	tripTypes := []models.TripType{
		{Slug: "point-to-point", Name: "Point to Point", Description: "Direct transportation from one location to another", IsActive: true},
		{Slug: "hourly-as-directed", Name: "Hourly/As Directed", Description: "Hourly rental with flexible routing as directed by passenger", IsActive: true},
		{Slug: "round-trip", Name: "Round Trip", Description: "Transportation to destination and return to origin", IsActive: true},
		{Slug: "one-way-transfer", Name: "One Way Transfer", Description: "Single journey transfer service", IsActive: true},
		{Slug: "charter", Name: "Charter", Description: "Full vehicle charter for extended periods or events", IsActive: true},
	}
	for _, t := range tripTypes {
		exists, err := s.TripTypes.SlugExists(t.Slug, "")
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}
		if _, err := s.TripTypes.Create(t); err != nil {
			if domain.IsConflict(err) {
				continue
			}
			return res, err
		}
		res.TripTypes++
	}

	vehicles := []models.Vehicle{
		{Name: "Luxury Crossover", QuantityPassengers: 3, QuantityBaggage: 3, Description: "Three-row luxury SUV, perfect for any excursion in comfort.", PricePerHour: 50, PricePerMile: 2, Images: []string{"/fleet/vehicle1.webp"}, IsActive: true},
		{Name: "SUV Escalade", QuantityPassengers: 5, QuantityBaggage: 5, Description: "The ultimate luxury SUV ride.", PricePerHour: 60, PricePerMile: 2, Images: []string{"/fleet/vehicle5.webp"}, IsActive: true},
		{Name: "Sprinter Van", QuantityPassengers: 13, QuantityBaggage: 20, Description: "Stylish and versatile passenger van.", PricePerHour: 80, PricePerMile: 4, Images: []string{"/fleet/vehicle8.webp"}, IsActive: true},
		{Name: "Stretch Limo 8pax", QuantityPassengers: 8, QuantityBaggage: 3, Description: "Stunning 8-passenger stretch limousine.", PricePerHour: 80, PricePerMile: 4, Images: []string{"/fleet/vehicle14.webp"}, IsActive: true},
		{Name: "Party Bus 25 Pax", QuantityPassengers: 25, QuantityBaggage: 5, Description: "State-of-the-art limo bus for a luxurious party on wheels.", PricePerHour: 150, PricePerMile: 6, Images: []string{"/fleet/vehicle24.webp"}, IsActive: true},
		{Name: "Motor Coach 57", QuantityPassengers: 57, QuantityBaggage: 40, Description: "Luxurious passenger bus for large groups.", PricePerHour: 260, PricePerMile: 8, Images: []string{"/fleet/vehicle41.webp"}, IsActive: true},
	}
	for _, v := range vehicles {
		exists, err := s.vehicleNameExists(v.Name)
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}
		if _, err := s.Vehicles.Create(v); err != nil {
			return res, err
		}
		res.Vehicles++
	}

	services := []models.Service{
		{Slug: "weddings", Title: "Weddings", Description: "Leave the logistics to us and focus on what matters most.", Image: "/service/service1.webp", IsActive: true},
		{Slug: "corporate-services", Title: "Corporate Services", Description: "Professional chauffeurs for corporate events.", Image: "/service/service2.webp", IsActive: true},
		{Slug: "party-bus-rentals", Title: "Party Bus Rentals", Description: "Party bus rentals for up to 30 passengers.", Image: "/service/service3.webp", IsActive: true},
		{Slug: "nights-on-the-town", Title: "Nights on the Town", Description: "Professional chauffeurs for memorable nights out.", Image: "/service/service5.webp", IsActive: true},
		{Slug: "airport-transfers", Title: "Airport Transfers", Description: "Reliable airport transportation service.", Image: "/service/service6.webp", IsActive: true},
		{Slug: "sporting-events", Title: "Sporting Events", Description: "Cheer on your team in style.", Image: "/service/service10.webp", IsActive: true},
	}
	for _, sv := range services {
		exists, err := s.Services.SlugExists(sv.Slug, "")
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}
		if _, err := s.Services.Create(sv); err != nil {
			if domain.IsConflict(err) {
				continue
			}
			return res, err
		}
		res.Services++
	}

	utils.LogEvent(s.RequestID, "seed", "run",
		fmt.Sprintf("trip_types=%d vehicles=%d services=%d", res.TripTypes, res.Vehicles, res.Services))
	return res, nil
}

func (s SeedService) vehicleNameExists(name string) (bool, error) {
	list, err := s.Vehicles.List(false)
	if err != nil {
		return false, err
	}
	for _, v := range list {
		if v.Name == name {
			return true, nil
		}
	}
	return false, nil
}
