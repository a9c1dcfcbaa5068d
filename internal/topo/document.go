package topo

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dlubom/CaveConv/internal/topo/wire"
)

const (
	surveyMagic = "Top"

	// SurveyVersion is the only container version this decoder understands.
	SurveyVersion byte = 3
)

// Tick bookkeeping for trip timestamps: 100 ns units counted from
// 0001-01-01 UTC. unixEpochTicks is 1970-01-01 on that scale.
const (
	ticksPerSecond = 10_000_000
	unixEpochTicks = 621355968000000000
)

// DecodeSurvey decodes one survey (.top) file. The buffer must hold the
// complete file; any structural violation aborts with an error wrapping one
// of the package sentinels, and no partial document is ever returned.
func DecodeSurvey(buf []byte) (*Document, error) {
	r := wire.NewReader(buf)
	if err := expectHeader(r, surveyMagic, SurveyVersion); err != nil {
		return nil, err
	}

	trips, err := decodeTrips(r)
	if err != nil {
		return nil, err
	}
	shots, err := decodeShots(r)
	if err != nil {
		return nil, err
	}
	refs, err := decodeReferences(r)
	if err != nil {
		return nil, err
	}
	overview, err := decodeMapping(r)
	if err != nil {
		return nil, err
	}
	outline, err := decodeDrawing(r)
	if err != nil {
		return nil, err
	}
	sideview, err := decodeDrawing(r)
	if err != nil {
		return nil, err
	}

	// Trip references are validated once the trip count is final; a shot
	// pointing past the trip table poisons the whole document.
	for i, s := range shots {
		if s.TripIndex == -1 {
			continue
		}
		if s.TripIndex < 0 || s.TripIndex >= len(trips) {
			return nil, fmt.Errorf("%w: shot %d references trip %d of %d", ErrInvalidTripReference, i, s.TripIndex, len(trips))
		}
	}

	doc := &Document{
		Version:    SurveyVersion,
		Trips:      trips,
		Shots:      shots,
		References: refs,
		Overview:   overview,
		Outline:    outline,
		Sideview:   sideview,
	}
	log.Debug().
		Int("trips", len(doc.Trips)).
		Int("shots", len(doc.Shots)).
		Int("references", len(doc.References)).
		Int("outline_elements", len(doc.Outline.Elements)).
		Int("sideview_elements", len(doc.Sideview.Elements)).
		Msg("survey decoded")
	return doc, nil
}

// expectHeader consumes the magic string and version byte shared by both
// container formats.
func expectHeader(r *wire.Reader, magic string, version byte) error {
	got, err := r.ReadBytes(len(magic) + 1)
	if err != nil {
		return err
	}
	if string(got[:len(magic)]) != magic || got[len(magic)] != version {
		return fmt.Errorf("%w: expected %q version %d, found % X", ErrUnsupportedFormat, magic, version, got)
	}
	return nil
}

func decodeTrips(r *wire.Reader) ([]Trip, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	trips := []Trip{}
	for i := 0; i < int(count); i++ {
		t, err := decodeTrip(r)
		if err != nil {
			return nil, fmt.Errorf("trip %d: %w", i, err)
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func decodeTrip(r *wire.Reader) (Trip, error) {
	ticks, err := r.ReadI64()
	if err != nil {
		return Trip{}, err
	}
	comment, err := r.ReadString()
	if err != nil {
		return Trip{}, err
	}
	declination, err := r.ReadI16()
	if err != nil {
		return Trip{}, err
	}
	return Trip{
		Time:        timeFromTicks(ticks),
		Comment:     comment,
		Declination: Degrees(declination, FullCircle),
	}, nil
}

// timeFromTicks converts collector ticks to a time.Time. The arithmetic is
// split against the 1970 tick offset because a tick count near the present
// overflows a time.Duration when multiplied out to nanoseconds.
func timeFromTicks(ticks int64) time.Time {
	rel := ticks - unixEpochTicks
	return time.Unix(rel/ticksPerSecond, (rel%ticksPerSecond)*100).UTC()
}

func decodeShots(r *wire.Reader) ([]Shot, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	shots := []Shot{}
	for i := 0; i < int(count); i++ {
		s, err := decodeShot(r)
		if err != nil {
			return nil, fmt.Errorf("shot %d: %w", i, err)
		}
		shots = append(shots, s)
	}
	return shots, nil
}

func decodeShot(r *wire.Reader) (Shot, error) {
	fromRaw, err := r.ReadU32()
	if err != nil {
		return Shot{}, err
	}
	toRaw, err := r.ReadU32()
	if err != nil {
		return Shot{}, err
	}
	dist, err := r.ReadI32()
	if err != nil {
		return Shot{}, err
	}
	azimuth, err := r.ReadI16()
	if err != nil {
		return Shot{}, err
	}
	inclination, err := r.ReadI16()
	if err != nil {
		return Shot{}, err
	}
	flags, err := r.ReadU8()
	if err != nil {
		return Shot{}, err
	}
	roll, err := r.ReadU8()
	if err != nil {
		return Shot{}, err
	}
	tripIndex, err := r.ReadI16()
	if err != nil {
		return Shot{}, err
	}

	s := Shot{
		From:        DecodeStationID(fromRaw),
		To:          DecodeStationID(toRaw),
		Distance:    dist,
		Azimuth:     compass(Degrees(azimuth, FullCircle)),
		Inclination: Degrees(inclination, FullCircle),
		Flags:       ShotFlags(flags),
		Roll:        Degrees(int16(roll), FullCircleRoll),
		TripIndex:   int(tripIndex),
	}
	// The comment is part of the record only when the flag says so; the
	// record length is unknown until the flag byte has been read.
	if s.Flags.HasComment() {
		comment, err := r.ReadString()
		if err != nil {
			return Shot{}, err
		}
		s.Comment = comment
	}
	return s, nil
}

func decodeReferences(r *wire.Reader) ([]Reference, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	refs := []Reference{}
	for i := 0; i < int(count); i++ {
		ref, err := decodeReference(r)
		if err != nil {
			return nil, fmt.Errorf("reference %d: %w", i, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func decodeReference(r *wire.Reader) (Reference, error) {
	stationRaw, err := r.ReadU32()
	if err != nil {
		return Reference{}, err
	}
	east, err := r.ReadI64()
	if err != nil {
		return Reference{}, err
	}
	north, err := r.ReadI64()
	if err != nil {
		return Reference{}, err
	}
	altitude, err := r.ReadI32()
	if err != nil {
		return Reference{}, err
	}
	comment, err := r.ReadString()
	if err != nil {
		return Reference{}, err
	}
	return Reference{
		Station:  DecodeStationID(stationRaw),
		East:     east,
		North:    north,
		Altitude: altitude,
		Comment:  comment,
	}, nil
}

func decodeMapping(r *wire.Reader) (Mapping, error) {
	origin, err := decodePoint(r)
	if err != nil {
		return Mapping{}, err
	}
	scale, err := r.ReadI32()
	if err != nil {
		return Mapping{}, err
	}
	return Mapping{Origin: origin, Scale: scale}, nil
}

func decodePoint(r *wire.Reader) (Point, error) {
	x, err := r.ReadI32()
	if err != nil {
		return Point{}, err
	}
	y, err := r.ReadI32()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}
