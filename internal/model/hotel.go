// Package model defines the JSON payloads exchanged with clients and with the
// downstream reservation, payment and loyalty services. All field names are
// camelCase per the platform-wide API convention.
package model

import "github.com/google/uuid"

// Hotel is the reservation service's full hotel record. It is exposed
// verbatim by the paginated listing pass-through and fetched fresh for every
// booking run to price the stay.
//
// Fields:
//  HotelUID – stable hotel identifier.
//  Price    – nightly price in whole currency units.
type Hotel struct {
	HotelUID uuid.UUID `json:"hotelUid"`
	Name     string    `json:"name"`
	Country  string    `json:"country"`
	City     string    `json:"city"`
	Address  string    `json:"address"`
	Stars    int       `json:"stars"`
	Price    int       `json:"price"`
}

// HotelSummary is the condensed hotel view embedded inside reservation
// payloads.
type HotelSummary struct {
	HotelUID    uuid.UUID `json:"hotelUid"`
	Name        string    `json:"name"`
	FullAddress string    `json:"fullAddress"`
	Stars       int       `json:"stars"`
}

// Pagination mirrors the reservation service's paginated hotel listing.
type Pagination struct {
	Page          int     `json:"page"`
	PageSize      int     `json:"pageSize"`
	TotalElements int     `json:"totalElements"`
	Items         []Hotel `json:"items"`
}
