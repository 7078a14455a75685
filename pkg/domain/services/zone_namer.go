package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// DayDirectory resolves day numbers to names and back
type DayDirectory interface {
	DayName(day entities.DayOfWeek) (string, error)
	DayFromName(name string) (entities.DayOfWeek, error)
}

// ZoneNamer derives keys from baseline zone names and builds the names of
// merged double-delivery zones
type ZoneNamer struct {
	days         DayDirectory
	keyPattern   *regexp.Regexp
	mergePattern *regexp.Regexp
}

// NewZoneNamer creates a namer backed by the given day table
func NewZoneNamer(days DayDirectory) *ZoneNamer {
	return &ZoneNamer{
		days: days,
		// "CHI: MONDAY PM" -> market CHI, day token MONDAY
		keyPattern:   regexp.MustCompile(`^([A-Z]{3}): ([^ ]+)`),
		mergePattern: regexp.MustCompile(`^([A-Z]{3}: [^ ]+)(.*)$`),
	}
}

// ZoneKey returns the {market, day} a zone is indexed under. Zones whose
// first name token is not an upper-case full day name have no key.
func (n *ZoneNamer) ZoneKey(zone entities.Zone) (entities.ZoneKey, bool) {
	match := n.keyPattern.FindStringSubmatch(zone.Name)
	if match == nil {
		return entities.ZoneKey{}, false
	}

	token := match[2]
	if token != strings.ToUpper(token) {
		return entities.ZoneKey{}, false
	}
	day, err := n.days.DayFromName(token)
	if err != nil {
		return entities.ZoneKey{}, false
	}
	name, err := n.days.DayName(day)
	if err != nil || strings.ToUpper(name) != token {
		return entities.ZoneKey{}, false
	}

	return entities.ZoneKey{Market: entities.MarketCode(match[1]), Day: day}, true
}

// ReferenceName renders the name prefix a key stands for, e.g. "CHI: TUESDAY"
func (n *ZoneNamer) ReferenceName(key entities.ZoneKey) (string, error) {
	name, err := n.days.DayName(key.Day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", key.Market, strings.ToUpper(name)), nil
}

// MergedName inserts the reference day after the moved zone's day token:
// "CHI: MONDAY PM" with Tuesday becomes "CHI: MONDAY / TUESDAY PM"
func (n *ZoneNamer) MergedName(movedName string, referenceDay entities.DayOfWeek) (string, error) {
	match := n.mergePattern.FindStringSubmatch(movedName)
	if match == nil {
		return "", errors.Wrapf(entities.ErrMalformedZoneName, "cannot derive merged name from %q", movedName)
	}

	dayName, err := n.days.DayName(referenceDay)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s / %s%s", match[1], strings.ToUpper(dayName), match[2]), nil
}
