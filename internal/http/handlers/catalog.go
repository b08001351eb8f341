package handlers

import (
	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/reflink"
	"github.com/yungbote/exocatalog/internal/services"
)

type HostHandler struct {
	*resource[types.Host, services.HostInput]
}

func NewHostHandler(catalog services.CatalogService) *HostHandler {
	return &HostHandler{&resource[types.Host, services.HostInput]{
		list:     catalog.ListHosts,
		get:      catalog.GetHost,
		create:   catalog.CreateHost,
		update:   catalog.UpdateHost,
		remove:   catalog.DeleteHost,
		snapshot: services.HostInputFrom,
		view:     identity[types.Host],
	}}
}

type DiscoveryHandler struct {
	*resource[types.Discovery, services.DiscoveryInput]
}

func NewDiscoveryHandler(catalog services.CatalogService) *DiscoveryHandler {
	return &DiscoveryHandler{&resource[types.Discovery, services.DiscoveryInput]{
		list:     catalog.ListDiscoveries,
		get:      catalog.GetDiscovery,
		create:   catalog.CreateDiscovery,
		update:   catalog.UpdateDiscovery,
		remove:   catalog.DeleteDiscovery,
		snapshot: services.DiscoveryInputFrom,
		view:     identity[types.Discovery],
	}}
}

type ReferenceHandler struct {
	*resource[types.SystemParameterReference, services.SystemParameterReferenceInput]
}

func NewReferenceHandler(catalog services.CatalogService) *ReferenceHandler {
	return &ReferenceHandler{&resource[types.SystemParameterReference, services.SystemParameterReferenceInput]{
		list:     catalog.ListReferences,
		get:      catalog.GetReference,
		create:   catalog.CreateReference,
		update:   catalog.UpdateReference,
		remove:   catalog.DeleteReference,
		snapshot: services.SystemParameterReferenceInputFrom,
		view:     func(r *types.SystemParameterReference) any { return newReferenceView(r) },
	}}
}

type SystemHandler struct {
	*resource[types.PlanetarySystem, services.PlanetarySystemInput]
}

func NewSystemHandler(catalog services.CatalogService) *SystemHandler {
	return &SystemHandler{&resource[types.PlanetarySystem, services.PlanetarySystemInput]{
		list:     catalog.ListSystems,
		get:      catalog.GetSystem,
		create:   catalog.CreateSystem,
		update:   catalog.UpdateSystem,
		remove:   catalog.DeleteSystem,
		snapshot: services.PlanetarySystemInputFrom,
		view:     func(s *types.PlanetarySystem) any { return newSystemView(s) },
	}}
}

type PlanetHandler struct {
	*resource[types.Planet, services.PlanetInput]
}

func NewPlanetHandler(catalog services.CatalogService) *PlanetHandler {
	return &PlanetHandler{&resource[types.Planet, services.PlanetInput]{
		list:     catalog.ListPlanets,
		get:      catalog.GetPlanet,
		create:   catalog.CreatePlanet,
		update:   catalog.UpdatePlanet,
		remove:   catalog.DeletePlanet,
		snapshot: services.PlanetInputFrom,
		view:     identity[types.Planet],
	}}
}

// referenceView renders dates as YYYY-MM-DD and splits the embedded
// publication link out of the name.
type referenceView struct {
	ID                    uint     `json:"id"`
	Name                  string   `json:"name"`
	RightAscension        string   `json:"right_ascension"`
	RADegrees             *float64 `json:"ra_degrees"`
	Declination           string   `json:"declination"`
	DecDegrees            *float64 `json:"dec_degrees"`
	RowUpdate             *string  `json:"row_update"`
	PlanetPublicationDate *string  `json:"planet_publication_date"`
	ReleaseDate           *string  `json:"release_date"`
	ReferenceHref         *string  `json:"reference_href"`
	ReferenceText         string   `json:"reference_text"`
}

func newReferenceView(r *types.SystemParameterReference) *referenceView {
	if r == nil {
		return nil
	}
	href, text := reflink.Extract(r.Name)
	return &referenceView{
		ID:                    r.ID,
		Name:                  r.Name,
		RightAscension:        r.RightAscension,
		RADegrees:             r.RADegrees,
		Declination:           r.Declination,
		DecDegrees:            r.DecDegrees,
		RowUpdate:             services.FormatDate(r.RowUpdate),
		PlanetPublicationDate: services.FormatDate(r.PlanetPublicationDate),
		ReleaseDate:           services.FormatDate(r.ReleaseDate),
		ReferenceHref:         href,
		ReferenceText:         text,
	}
}

type systemView struct {
	ID                   uint           `json:"id"`
	HostID               uint           `json:"host_id"`
	Host                 *types.Host    `json:"host"`
	ParameterReferenceID *uint          `json:"parameter_reference_id"`
	ParameterReference   *referenceView `json:"parameter_reference"`
}

func newSystemView(s *types.PlanetarySystem) *systemView {
	return &systemView{
		ID:                   s.ID,
		HostID:               s.HostID,
		Host:                 s.Host,
		ParameterReferenceID: s.ParameterReferenceID,
		ParameterReference:   newReferenceView(s.ParameterReference),
	}
}
