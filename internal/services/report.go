package services

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/yungbote/exocatalog/internal/normalization"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/apierr"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

const (
	ReportHost            = "host"
	ReportDiscovery       = "discovery"
	ReportPlanetarySystem = "planetary-system"
	ReportPlanet          = "planet"
)

type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// ReportForm describes one single-record submission form.
type ReportForm struct {
	Kind     string      `json:"kind"`
	Title    string      `json:"title"`
	Action   string      `json:"action"`
	Redirect string      `json:"redirect"`
	Fields   []FormField `json:"fields"`
}

type ReportService interface {
	Forms() []ReportForm
	Form(kind string) (*ReportForm, error)
	// Submit decodes a form post, creates the record and returns the list path
	// the client should be redirected to.
	Submit(dbc dbctx.Context, kind string, values url.Values) (string, error)
}

type reportService struct {
	log     *logger.Logger
	catalog CatalogService
}

func NewReportService(log *logger.Logger, catalog CatalogService) ReportService {
	RegisterValidatorTags()
	return &reportService{log: log.With("service", "ReportService"), catalog: catalog}
}

func str(name string, required bool) FormField {
	return FormField{Name: name, Type: "string", Required: required}
}

func num(names ...string) []FormField {
	out := make([]FormField, 0, len(names))
	for _, n := range names {
		out = append(out, FormField{Name: n, Type: "number"})
	}
	return out
}

func joinFields(groups ...[]FormField) []FormField {
	var out []FormField
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var reportForms = []ReportForm{
	{
		Kind:     ReportHost,
		Title:    "Report a host star",
		Action:   "/report/host",
		Redirect: "/api/hosts",
		Fields: joinFields(
			[]FormField{str("name", true), str("spectral_type", true)},
			num("effective_temperature", "radius", "mass", "metallicity"),
			[]FormField{str("metallicity_ratio", false)},
			num("surface_gravity", "distance", "v_magnitude", "k_magnitude", "gaia_magnitude"),
		),
	},
	{
		Kind:     ReportDiscovery,
		Title:    "Report a discovery",
		Action:   "/report/discovery",
		Redirect: "/api/discoveries",
		Fields: []FormField{
			str("method", true),
			{Name: "year", Type: "integer"},
			str("reference_name", true),
			str("facility", true),
			str("telescope", true),
		},
	},
	{
		Kind:     ReportPlanetarySystem,
		Title:    "Report a planetary system",
		Action:   "/report/planetary-system",
		Redirect: "/api/systems",
		Fields: []FormField{
			{Name: "host", Type: "choice", Required: true},
			{Name: "parameter_reference", Type: "choice", Required: true},
		},
	},
	{
		Kind:     ReportPlanet,
		Title:    "Report a planet",
		Action:   "/report/planet",
		Redirect: "/api/planets",
		Fields: joinFields(
			[]FormField{
				str("name", true),
				{Name: "host", Type: "choice", Required: true},
				{Name: "discovery", Type: "choice", Required: true},
				{Name: "default_flag", Type: "boolean"},
				{Name: "controversial_flag", Type: "boolean"},
				str("parameter_reference", false),
			},
			num("orbital_period", "semi_major_axis", "radius", "mass", "mass_sin_i_earth", "mass_sin_i_jupiter"),
			[]FormField{str("mass_provenance", false)},
			num("eccentricity", "insolation_flux", "equilibrium_temperature", "inclination"),
			[]FormField{{Name: "ttv_flag", Type: "boolean"}},
			num("transit_duration"),
		),
	},
}

func (s *reportService) Forms() []ReportForm {
	out := make([]ReportForm, len(reportForms))
	copy(out, reportForms)
	return out
}

func (s *reportService) Form(kind string) (*ReportForm, error) {
	for i := range reportForms {
		if reportForms[i].Kind == kind {
			f := reportForms[i]
			return &f, nil
		}
	}
	return nil, apierr.NotFound("report form " + strconv.Quote(kind))
}

func (s *reportService) Submit(dbc dbctx.Context, kind string, values url.Values) (string, error) {
	form, err := s.Form(kind)
	if err != nil {
		return "", err
	}
	r := &formReader{values: values}

	switch kind {
	case ReportHost:
		in := HostInput{
			Name:                 r.text("name"),
			SpectralType:         r.text("spectral_type"),
			EffectiveTemperature: r.number("effective_temperature"),
			Radius:               r.number("radius"),
			Mass:                 r.number("mass"),
			Metallicity:          r.number("metallicity"),
			MetallicityRatio:     r.textPtr("metallicity_ratio"),
			SurfaceGravity:       r.number("surface_gravity"),
			Distance:             r.number("distance"),
			VMagnitude:           r.number("v_magnitude"),
			KMagnitude:           r.number("k_magnitude"),
			GaiaMagnitude:        r.number("gaia_magnitude"),
		}
		if err := r.check(in); err != nil {
			return "", err
		}
		_, err = s.catalog.CreateHost(dbc, in)

	case ReportDiscovery:
		in := DiscoveryInput{
			Method:        r.text("method"),
			Year:          r.integer("year"),
			ReferenceName: r.text("reference_name"),
			Facility:      r.text("facility"),
			Telescope:     r.text("telescope"),
		}
		if err := r.check(in); err != nil {
			return "", err
		}
		_, err = s.catalog.CreateDiscovery(dbc, in)

	case ReportPlanetarySystem:
		in := PlanetarySystemInput{
			HostID:               r.id("host"),
			ParameterReferenceID: r.optionalID("parameter_reference"),
		}
		if in.ParameterReferenceID == nil {
			r.fail("parameter_reference", "This field is required.")
		}
		if err := r.check(in); err != nil {
			return "", err
		}
		_, err = s.catalog.CreateSystem(dbc, in)

	case ReportPlanet:
		in := PlanetInput{
			Name:                   r.text("name"),
			HostID:                 r.id("host"),
			DiscoveryID:            r.id("discovery"),
			DefaultFlag:            r.checkbox("default_flag"),
			ControversialFlag:      r.checkbox("controversial_flag"),
			ParameterReference:     r.textPtr("parameter_reference"),
			OrbitalPeriod:          r.number("orbital_period"),
			SemiMajorAxis:          r.number("semi_major_axis"),
			Radius:                 r.number("radius"),
			Mass:                   r.number("mass"),
			MassSinIEarth:          r.number("mass_sin_i_earth"),
			MassSinIJupiter:        r.number("mass_sin_i_jupiter"),
			MassProvenance:         r.textPtr("mass_provenance"),
			Eccentricity:           r.number("eccentricity"),
			InsolationFlux:         r.number("insolation_flux"),
			EquilibriumTemperature: r.number("equilibrium_temperature"),
			Inclination:            r.number("inclination"),
			TTVFlag:                r.checkbox("ttv_flag"),
			TransitDuration:        r.number("transit_duration"),
		}
		if err := r.check(in); err != nil {
			return "", err
		}
		_, err = s.catalog.CreatePlanet(dbc, in)
	}

	if err != nil {
		return "", renameFields(err)
	}
	s.log.Info("Report accepted", "kind", kind)
	return form.Redirect, nil
}

// formFieldNames maps write-payload names onto the names used by the forms.
var formFieldNames = map[string]string{
	"host_id":                "host",
	"discovery_id":           "discovery",
	"parameter_reference_id": "parameter_reference",
}

func renameFields(err error) error {
	var ae *apierr.Error
	if !errors.As(err, &ae) || len(ae.Fields) == 0 {
		return err
	}
	return apierr.Validation(formNames(ae.Fields))
}

func formNames(in []apierr.FieldError) []apierr.FieldError {
	out := make([]apierr.FieldError, len(in))
	for i, fe := range in {
		if name, ok := formFieldNames[fe.Field]; ok {
			fe.Field = name
		}
		out[i] = fe
	}
	return out
}

// formReader pulls typed values out of a form post, collecting a message for
// every value that does not parse.
type formReader struct {
	values url.Values
	errs   []apierr.FieldError
}

func (r *formReader) fail(key, msg string) {
	r.errs = append(r.errs, apierr.FieldError{Field: key, Message: msg})
}

func (r *formReader) text(key string) string {
	return strings.TrimSpace(r.values.Get(key))
}

func (r *formReader) textPtr(key string) *string {
	return normalization.NullableString(r.values.Get(key))
}

func (r *formReader) number(key string) *float64 {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	v := normalization.ParseFloat(raw, nil)
	if v == nil {
		r.fail(key, "Enter a number.")
	}
	return v
}

func (r *formReader) integer(key string) *int {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	v := normalization.ParseInt(raw, nil)
	if v == nil {
		r.fail(key, "Enter a whole number.")
	}
	return v
}

func (r *formReader) optionalID(key string) *uint {
	raw := r.text(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		r.fail(key, invalidChoice)
		return nil
	}
	id := uint(v)
	return &id
}

// id returns 0 for a blank value so the required rule reports it.
func (r *formReader) id(key string) uint {
	if v := r.optionalID(key); v != nil {
		return *v
	}
	return 0
}

// checkbox reads a checkbox: absent is false.
func (r *formReader) checkbox(key string) bool {
	v, ok := normalization.ParseBool(r.values.Get(key))
	return ok && v
}

// check validates in and reports decode and rule failures together.
func (r *formReader) check(in any) error {
	verr := Validate(in)
	if len(r.errs) == 0 && verr == nil {
		return nil
	}
	var renamed error
	if verr != nil {
		renamed = fieldErrors(formNames(FieldErrors(verr)))
	}
	return apierr.Validation(mergeFieldErrors(r.errs, renamed))
}
