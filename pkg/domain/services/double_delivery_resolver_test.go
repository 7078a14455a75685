package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/reference"
	"github.com/vsinha/winexc/pkg/infrastructure/repositories/memory"
	fixtures "github.com/vsinha/winexc/pkg/infrastructure/testing"
)

type ResolverSuite struct {
	suite.Suite
	baseline *memory.BaselineRepository
	resolver *DoubleDeliveryResolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	ref := reference.Default()
	s.baseline = memory.NewBaselineRepository(NewZoneNamer(ref), 8)
	s.Require().NoError(s.baseline.LoadRecords(fixtures.BaselineRecords()))
	s.resolver = NewDoubleDeliveryResolver(s.baseline, ref, zap.NewNop())
}

func (s *ResolverSuite) TestResolve_ChicagoMondayToTuesday() {
	pairs, err := s.resolver.Resolve(fixtures.PlanEntries())
	s.Require().NoError(err)
	s.Require().Len(pairs, 1)

	s.Equal(entities.WindowID("w-chi-mon"), pairs[0].Moved.Window.ID)
	s.Equal(entities.WindowID("w-chi-tue"), pairs[0].Reference.Window.ID)
	s.Equal(entities.MarketCode("CHI"), pairs[0].Entry.MarketCode)
}

func (s *ResolverSuite) TestResolve_TargetZoneAlsoMoves() {
	entries := []*entities.ExceptionPlanEntry{
		{MarketCode: "CHI", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
		{MarketCode: "CHI", OriginalDay: entities.Tuesday, ExceptionDay: entities.Wednesday},
		{MarketCode: "CHI", OriginalDay: entities.Wednesday, ExceptionDay: entities.Thursday},
	}

	pairs, err := s.resolver.Resolve(entries)
	s.Require().NoError(err)
	s.Empty(pairs)
}

func (s *ResolverSuite) TestResolve_NoReferenceZone() {
	entries := []*entities.ExceptionPlanEntry{
		{MarketCode: "MKE", OriginalDay: entities.Tuesday, ExceptionDay: entities.Friday},
	}

	pairs, err := s.resolver.Resolve(entries)
	s.Require().NoError(err)
	s.Empty(pairs)
}

func (s *ResolverSuite) TestResolve_EmployeeEntriesNeverPair() {
	entries := []*entities.ExceptionPlanEntry{
		{OldWindowID: "w-chi-emp", MarketCode: "CHI", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday, IsEmployeeZone: true},
	}

	pairs, err := s.resolver.Resolve(entries)
	s.Require().NoError(err)
	s.Empty(pairs)
}

func (s *ResolverSuite) TestResolve_EmployeeEntryBlocksReference() {
	// the employee entry names the Tuesday window as its origin, so the
	// Tuesday zone is considered moved
	entries := []*entities.ExceptionPlanEntry{
		{MarketCode: "CHI", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
		{OldWindowID: "w-chi-tue", MarketCode: "CHI", OriginalDay: entities.Tuesday, ExceptionDay: entities.Tuesday, IsEmployeeZone: true},
	}

	pairs, err := s.resolver.Resolve(entries)
	s.Require().NoError(err)
	s.Empty(pairs)
}

func (s *ResolverSuite) TestResolve_AmbiguousReference() {
	duplicate := fixtures.NewRecord("z-chi-tue-2", "w-chi-tue-2", "CHI: TUESDAY AM", "CHI", fixtures.Schedule{
		CustomizationStartDay: entities.Friday,
		CustomizationEndDay:   entities.Sunday,
		DispatchDay:           entities.Sunday,
		DeliveryDay:           entities.Tuesday,
	})
	s.Require().NoError(s.baseline.AddRecord(*duplicate))

	_, err := s.resolver.Resolve(fixtures.PlanEntries())
	s.Require().ErrorIs(err, entities.ErrAmbiguousZone)
}

func (s *ResolverSuite) TestResolve_MovedZoneMissing() {
	entries := []*entities.ExceptionPlanEntry{
		{OldWindowID: "w-anything", MarketCode: "CHI", OriginalDay: entities.Friday, ExceptionDay: entities.Tuesday},
	}

	_, err := s.resolver.Resolve(entries)
	s.Require().ErrorIs(err, entities.ErrZoneNotFound)
}

func (s *ResolverSuite) TestResolve_OriginMismatch() {
	entries := []*entities.ExceptionPlanEntry{
		{OldWindowID: "w-chi-wed", MarketCode: "CHI", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
	}

	_, err := s.resolver.Resolve(entries)
	s.Require().ErrorIs(err, entities.ErrOriginMismatch)
}

func (s *ResolverSuite) TestResolve_DuplicateEntry() {
	entries := []*entities.ExceptionPlanEntry{
		{MarketCode: "CHI", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
		{MarketCode: "CHI", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
	}

	_, err := s.resolver.Resolve(entries)
	s.Require().ErrorIs(err, entities.ErrDuplicateEntry)
}

func (s *ResolverSuite) TestResolve_UnknownMarket() {
	entries := []*entities.ExceptionPlanEntry{
		{OldWindowID: "w-x", MarketCode: "XYZ", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
	}

	_, err := s.resolver.Resolve(entries)
	s.Require().ErrorIs(err, entities.ErrUnknownMarket)
}

func (s *ResolverSuite) TestOriginWindowID() {
	origin, err := s.resolver.OriginWindowID(&entities.ExceptionPlanEntry{MarketCode: "CHI", OriginalDay: entities.Wednesday})
	s.Require().NoError(err)
	s.Equal(entities.WindowID("w-chi-wed"), origin)

	origin, err = s.resolver.OriginWindowID(&entities.ExceptionPlanEntry{OldWindowID: "w-explicit", MarketCode: "CHI"})
	s.Require().NoError(err)
	s.Equal(entities.WindowID("w-explicit"), origin)

	_, err = s.resolver.OriginWindowID(&entities.ExceptionPlanEntry{MarketCode: "CHI", OriginalDay: entities.Monday, IsEmployeeZone: true})
	s.Require().ErrorIs(err, entities.ErrMalformedRecord)
}

func TestResolve_EmptyPlan(t *testing.T) {
	ref := reference.Default()
	baseline := memory.NewBaselineRepository(NewZoneNamer(ref), 0)
	resolver := NewDoubleDeliveryResolver(baseline, ref, zap.NewNop())

	pairs, err := resolver.Resolve(nil)
	require.NoError(t, err)
	require.Empty(t, pairs)
}
