package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/internal/pkg/serverutils"
	"trade-compliance-be/internal/repository/contract"
	"trade-compliance-be/internal/repository/specification"
	"trade-compliance-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fixture store backing the fake repositories ---

type complianceFixture struct {
	nomenclature []*entity.GoodsNomenclature
	imports      []*entity.ImportMeasure
	exports      []*entity.ExportMeasure
	vat          map[string]*entity.VatRate
	exchange     []*entity.ExchangeRate
	conditions   []*entity.MeasureCondition
	reach        []*entity.ReachMap
}

func ptrOf[T any](v T) *T { return &v }

func validOn(from time.Time, to *time.Time, asOf time.Time) bool {
	return !from.After(asOf) && (to == nil || !to.Before(asOf))
}

func defaultFixture() *complianceFixture {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &complianceFixture{
		nomenclature: []*entity.GoodsNomenclature{
			{GoodsCode: "6110", DescriptionEn: "Jerseys, pullovers, cardigans", Level: 4, ValidFrom: day},
			{GoodsCode: "611020", DescriptionEn: "Of cotton", Level: 6, ValidFrom: day},
			{GoodsCode: "61102000", DescriptionEn: "Of cotton - other", Level: 8, IsLeaf: true, ValidFrom: day},
		},
		imports: []*entity.ImportMeasure{
			{
				Id: 1, GoodsCode: "61102000", OriginGroup: "ERGA OMNES", MeasureType: "third_country_duty",
				DutyComponents: []entity.DutyComponent{{Type: "ad_valorem", Value: 12.0}},
				LegalBaseId:    "R2658/87", LegalBaseTitle: "Combined Nomenclature", ValidFrom: day,
			},
			{
				Id: 2, GoodsCode: "61102000", OriginGroup: "PK", MeasureType: "tariff_preference",
				DutyComponents: []entity.DutyComponent{{Type: "ad_valorem", Value: 9.6}},
				LegalBaseId:    "R978/2012", LegalBaseTitle: "GSP Regulation",
				CondCertCode:   ptrOf("N954"), ValidFrom: day,
			},
		},
		exports: []*entity.ExportMeasure{
			{
				Id: 1, GoodsCode: "61102000", DestinationGroup: "ERGA OMNES", MeasureType: "export_control",
				LegalBaseId: "R2021/821", LegalBaseTitle: "Dual-use Regulation", ValidFrom: day,
			},
		},
		vat: map[string]*entity.VatRate{
			"DE": {CountryCode: "DE", StandardRate: 19.0, ReducedRate1: ptrOf(7.0), ValidFrom: day},
		},
		exchange: []*entity.ExchangeRate{
			{Iso: "USD", Rate: 1.0876, RateDate: day, Source: "ECB"},
			{Iso: "GBP", Rate: 0.8532, RateDate: day, Source: "ECB"},
		},
		conditions: []*entity.MeasureCondition{
			{GoodsCode: "61102000", CertificateCode: "N954", Action: "apply_preference", Box44Codes: []string{"N954"}},
		},
		reach: []*entity.ReachMap{
			{GoodsCodePrefix: "611020", EntryNo: "43", ConditionalRule: ptrOf("azo dyes in textiles")},
		},
	}
}

// --- Fake repositories ---

type fakeNomenclatureRepo struct{ fix *complianceFixture }

func (f *fakeNomenclatureRepo) Create(ctx context.Context, n *entity.GoodsNomenclature) error {
	return nil
}
func (f *fakeNomenclatureRepo) Upsert(ctx context.Context, n *entity.GoodsNomenclature) error {
	return nil
}
func (f *fakeNomenclatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GoodsNomenclature, error) {
	return nil, nil
}
func (f *fakeNomenclatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GoodsNomenclature, error) {
	return f.fix.nomenclature, nil
}
func (f *fakeNomenclatureRepo) FindByCodes(ctx context.Context, codes []string) ([]*entity.GoodsNomenclature, error) {
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}
	var out []*entity.GoodsNomenclature
	for _, n := range f.fix.nomenclature {
		if want[n.GoodsCode] {
			out = append(out, n)
		}
	}
	return out, nil
}
func (f *fakeNomenclatureRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.fix.nomenclature)), nil
}

type fakeImportMeasureRepo struct {
	fix *complianceFixture
	err error
}

func (f *fakeImportMeasureRepo) Create(ctx context.Context, m *entity.ImportMeasure) error { return nil }
func (f *fakeImportMeasureRepo) CreateBulk(ctx context.Context, m []*entity.ImportMeasure) error {
	return nil
}
func (f *fakeImportMeasureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ImportMeasure, error) {
	return f.fix.imports, nil
}
func (f *fakeImportMeasureRepo) FindApplicable(ctx context.Context, goodsCode string, groups []string, asOf time.Time) ([]*entity.ImportMeasure, error) {
	if f.err != nil {
		return nil, f.err
	}
	allowed := map[string]bool{"ERGA OMNES": true}
	for _, g := range groups {
		allowed[g] = true
	}
	var out []*entity.ImportMeasure
	for _, m := range f.fix.imports {
		if m.GoodsCode == goodsCode && allowed[m.OriginGroup] && validOn(m.ValidFrom, m.ValidTo, asOf) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeImportMeasureRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.fix.imports)), nil
}

type fakeExportMeasureRepo struct{ fix *complianceFixture }

func (f *fakeExportMeasureRepo) Create(ctx context.Context, m *entity.ExportMeasure) error { return nil }
func (f *fakeExportMeasureRepo) CreateBulk(ctx context.Context, m []*entity.ExportMeasure) error {
	return nil
}
func (f *fakeExportMeasureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExportMeasure, error) {
	return f.fix.exports, nil
}
func (f *fakeExportMeasureRepo) FindApplicable(ctx context.Context, goodsCode string, groups []string, asOf time.Time) ([]*entity.ExportMeasure, error) {
	allowed := map[string]bool{"ERGA OMNES": true}
	for _, g := range groups {
		allowed[g] = true
	}
	var out []*entity.ExportMeasure
	for _, m := range f.fix.exports {
		if m.GoodsCode == goodsCode && allowed[m.DestinationGroup] && validOn(m.ValidFrom, m.ValidTo, asOf) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeExportMeasureRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.fix.exports)), nil
}

type fakeVatRateRepo struct{ fix *complianceFixture }

func (f *fakeVatRateRepo) Upsert(ctx context.Context, r *entity.VatRate) error { return nil }
func (f *fakeVatRateRepo) FindByCountry(ctx context.Context, countryCode string, asOf time.Time) (*entity.VatRate, error) {
	rate := f.fix.vat[countryCode]
	if rate == nil || !validOn(rate.ValidFrom, rate.ValidTo, asOf) {
		return nil, nil
	}
	return rate, nil
}
func (f *fakeVatRateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VatRate, error) {
	return nil, nil
}

type fakeExchangeRateRepo struct{ fix *complianceFixture }

func (f *fakeExchangeRateRepo) Create(ctx context.Context, r *entity.ExchangeRate) error { return nil }
func (f *fakeExchangeRateRepo) CreateBulk(ctx context.Context, r []*entity.ExchangeRate) error {
	return nil
}
func (f *fakeExchangeRateRepo) FindLatestByIso(ctx context.Context, isos []string, asOf time.Time) ([]*entity.ExchangeRate, error) {
	want := make(map[string]bool, len(isos))
	for _, iso := range isos {
		want[iso] = true
	}
	var out []*entity.ExchangeRate
	for _, r := range f.fix.exchange {
		if want[r.Iso] && !r.RateDate.After(asOf) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeExchangeRateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExchangeRate, error) {
	return f.fix.exchange, nil
}

type fakeConditionRepo struct{ fix *complianceFixture }

func (f *fakeConditionRepo) Create(ctx context.Context, c *entity.MeasureCondition) error { return nil }
func (f *fakeConditionRepo) CreateBulk(ctx context.Context, c []*entity.MeasureCondition) error {
	return nil
}
func (f *fakeConditionRepo) FindByGoodsCode(ctx context.Context, goodsCode string) ([]*entity.MeasureCondition, error) {
	var out []*entity.MeasureCondition
	for _, c := range f.fix.conditions {
		if c.GoodsCode == goodsCode {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeConditionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MeasureCondition, error) {
	return f.fix.conditions, nil
}

type fakeReachRepo struct{ fix *complianceFixture }

func (f *fakeReachRepo) Create(ctx context.Context, r *entity.ReachMap) error       { return nil }
func (f *fakeReachRepo) CreateBulk(ctx context.Context, r []*entity.ReachMap) error { return nil }
func (f *fakeReachRepo) FindByCodePrefixes(ctx context.Context, prefixes []string) ([]*entity.ReachMap, error) {
	want := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		want[p] = true
	}
	var out []*entity.ReachMap
	for _, r := range f.fix.reach {
		if want[r.GoodsCodePrefix] {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReachRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReachMap, error) {
	return f.fix.reach, nil
}

type fakeComplianceUow struct {
	fix       *complianceFixture
	importErr error
}

func (f *fakeComplianceUow) Begin(ctx context.Context) error { return nil }
func (f *fakeComplianceUow) Commit() error                   { return nil }
func (f *fakeComplianceUow) Rollback() error                 { return nil }
func (f *fakeComplianceUow) NomenclatureChunkRepository() contract.NomenclatureChunkRepository {
	return nil
}
func (f *fakeComplianceUow) GoodsNomenclatureRepository() contract.GoodsNomenclatureRepository {
	return &fakeNomenclatureRepo{fix: f.fix}
}
func (f *fakeComplianceUow) ImportMeasureRepository() contract.ImportMeasureRepository {
	return &fakeImportMeasureRepo{fix: f.fix, err: f.importErr}
}
func (f *fakeComplianceUow) ExportMeasureRepository() contract.ExportMeasureRepository {
	return &fakeExportMeasureRepo{fix: f.fix}
}
func (f *fakeComplianceUow) MeasureConditionRepository() contract.MeasureConditionRepository {
	return &fakeConditionRepo{fix: f.fix}
}
func (f *fakeComplianceUow) VatRateRepository() contract.VatRateRepository {
	return &fakeVatRateRepo{fix: f.fix}
}
func (f *fakeComplianceUow) ExchangeRateRepository() contract.ExchangeRateRepository {
	return &fakeExchangeRateRepo{fix: f.fix}
}
func (f *fakeComplianceUow) ReachMapRepository() contract.ReachMapRepository {
	return &fakeReachRepo{fix: f.fix}
}

type fakeFactory struct{ uow unitofwork.UnitOfWork }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newComplianceService(fix *complianceFixture) IComplianceService {
	return NewComplianceService(&fakeFactory{uow: &fakeComplianceUow{fix: fix}}, logger.NewNopLogger())
}

// --- Tests ---

func TestAssembleFullRecord(t *testing.T) {
	svc := newComplianceService(defaultFixture())

	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
	})
	require.NoError(t, err)

	assert.Equal(t, "61102000", record.QueryParameters.GoodsCode)
	assert.Equal(t, "PK", record.QueryParameters.Origin)
	assert.Equal(t, "DE", record.QueryParameters.Destination)

	values := record.DeterministicValues

	// Hierarchy walk: most specific first, down to the 4-digit heading.
	require.Len(t, values.GoodsNomenclatureEn, 3)
	assert.Equal(t, "61102000", values.GoodsNomenclatureEn[0].GoodsCode)
	assert.Equal(t, "611020", values.GoodsNomenclatureEn[1].GoodsCode)
	assert.Equal(t, "6110", values.GoodsNomenclatureEn[2].GoodsCode)
	assert.True(t, values.GoodsNomenclatureEn[0].IsLeaf)
	assert.Equal(t, "2024-01-01", values.GoodsNomenclatureEn[0].ValidityStartDate)

	require.Len(t, values.ImportMeasures, 2)
	require.Len(t, values.ExportMeasures, 1)

	require.Len(t, values.VatRates, 1)
	assert.Equal(t, 19.0, values.VatRates[0].StandardRatePercent)
	require.NotNil(t, values.VatRates[0].ReducedRate1Percent)
	assert.Equal(t, 7.0, *values.VatRates[0].ReducedRate1Percent)

	assert.Len(t, values.ExchangeRates, 2)
	require.Len(t, values.MeasureConditions, 1)
	assert.Equal(t, "N954", values.MeasureConditions[0].CertificateCode)
	require.Len(t, values.ReachEntries, 1)
	assert.Equal(t, "43", values.ReachEntries[0].EntryNo)

	assert.True(t, values.Completeness.AllMeasuresHaveLegalBase)
	assert.True(t, values.Completeness.AllRequiredVatPresent)
	assert.True(t, values.Completeness.HasReachMapping)
	assert.Empty(t, values.Unknowns)
}

func TestAssemblePrefersPreferentialRate(t *testing.T) {
	svc := newComplianceService(defaultFixture())

	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
	})
	require.NoError(t, err)

	res := record.DeterministicValues.ApplicableRateResolution
	require.NotNil(t, res)
	assert.True(t, res.PreferencePossible)
	assert.Equal(t, "PK", res.ChosenMeasureOrigin)
	require.NotNil(t, res.RequiredProof)
	assert.Equal(t, "N954", *res.RequiredProof)
	require.NotNil(t, res.ChosenDutyRatePercent)
	assert.Equal(t, 9.6, *res.ChosenDutyRatePercent)
	require.NotNil(t, res.FallbackIfNoProofPercent)
	assert.Equal(t, 12.0, *res.FallbackIfNoProofPercent)
}

func TestAssembleFallsBackToErgaOmnes(t *testing.T) {
	svc := newComplianceService(defaultFixture())

	// No preferential measure exists for US origin.
	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "US",
		Destination: "DE",
	})
	require.NoError(t, err)

	res := record.DeterministicValues.ApplicableRateResolution
	require.NotNil(t, res)
	assert.False(t, res.PreferencePossible)
	assert.Equal(t, "ERGA OMNES", res.ChosenMeasureOrigin)
	require.NotNil(t, res.ChosenDutyRatePercent)
	assert.Equal(t, 12.0, *res.ChosenDutyRatePercent)
	assert.Nil(t, res.FallbackIfNoProofPercent)
}

func TestAssembleReportsUnknowns(t *testing.T) {
	fix := defaultFixture()
	fix.vat = nil
	fix.reach = nil
	svc := newComplianceService(fix)

	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "FR",
	})
	require.NoError(t, err)

	values := record.DeterministicValues
	assert.False(t, values.Completeness.AllRequiredVatPresent)
	assert.False(t, values.Completeness.HasReachMapping)

	fields := make([]string, 0, len(values.Unknowns))
	for _, u := range values.Unknowns {
		fields = append(fields, u.Field)
	}
	assert.Contains(t, fields, "vat_rates")
	assert.Contains(t, fields, "reach_mapping")
	assert.NotContains(t, fields, "legal_base")
}

func TestAssembleFlagsMissingLegalBase(t *testing.T) {
	fix := defaultFixture()
	fix.imports[0].LegalBaseId = ""
	fix.imports[0].LegalBaseTitle = ""
	svc := newComplianceService(fix)

	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
	})
	require.NoError(t, err)

	values := record.DeterministicValues
	assert.False(t, values.Completeness.AllMeasuresHaveLegalBase)

	fields := make([]string, 0, len(values.Unknowns))
	for _, u := range values.Unknowns {
		fields = append(fields, u.Field)
	}
	assert.Contains(t, fields, "legal_base")

	// The empty legal base never reaches provenance.
	for _, base := range values.Provenance.LegalBases {
		assert.NotEmpty(t, base.Id)
	}
}

func TestAssembleProvenanceDeduplicatesLegalBases(t *testing.T) {
	fix := defaultFixture()
	fix.imports = append(fix.imports, &entity.ImportMeasure{
		Id: 3, GoodsCode: "61102000", OriginGroup: "ERGA OMNES", MeasureType: "supplementary_unit",
		LegalBaseId: "R2658/87", LegalBaseTitle: "Combined Nomenclature",
		ValidFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	svc := newComplianceService(fix)

	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
	})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, base := range record.DeterministicValues.Provenance.LegalBases {
		assert.False(t, seen[base.Id], "duplicate legal base %s", base.Id)
		seen[base.Id] = true
	}
	assert.True(t, seen["R2658/87"])
	assert.True(t, seen["R978/2012"])
	assert.True(t, seen["R2021/821"])
}

func TestAssembleAsOfFiltersValidityWindows(t *testing.T) {
	fix := defaultFixture()
	// A superseded ERGA OMNES duty that ended before the fixture rows began.
	fix.imports = append(fix.imports, &entity.ImportMeasure{
		Id: 9, GoodsCode: "61102000", OriginGroup: "ERGA OMNES", MeasureType: "third_country_duty",
		DutyComponents: []entity.DutyComponent{{Type: "ad_valorem", Value: 14.0}},
		LegalBaseId:    "R1234/22", LegalBaseTitle: "Former CN",
		ValidFrom:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:        ptrOf(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
	})
	svc := newComplianceService(fix)

	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
		AsOf:        "2023-06-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "2023-06-15", record.QueryParameters.AsOf)

	values := record.DeterministicValues

	// Only the 2023 measure covers the reference date; the 2024 rows
	// and the 2024-dated exchange rates are out of window.
	require.Len(t, values.ImportMeasures, 1)
	assert.Equal(t, "R1234/22", values.ImportMeasures[0].LegalBase.Id)
	assert.Empty(t, values.ExportMeasures)
	assert.Empty(t, values.VatRates)
	assert.Empty(t, values.ExchangeRates)

	res := values.ApplicableRateResolution
	require.NotNil(t, res)
	assert.False(t, res.PreferencePossible)
	require.NotNil(t, res.ChosenDutyRatePercent)
	assert.Equal(t, 14.0, *res.ChosenDutyRatePercent)
}

func TestAssembleDefaultsAsOfToToday(t *testing.T) {
	svc := newComplianceService(defaultFixture())

	record, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
	})
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, today, record.QueryParameters.AsOf)
	// The open-ended fixture rows all cover today.
	assert.Len(t, record.DeterministicValues.ImportMeasures, 2)
	assert.Len(t, record.DeterministicValues.VatRates, 1)
}

func TestAssembleRejectsMalformedAsOf(t *testing.T) {
	svc := newComplianceService(defaultFixture())

	_, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
		AsOf:        "15/06/2023",
	})
	require.Error(t, err)
	var validationErr serverutils.ErrValidation
	assert.True(t, errors.As(err, &validationErr))
}

func TestAssembleUnknownGoodsCode(t *testing.T) {
	svc := newComplianceService(defaultFixture())

	_, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "99999999",
		Origin:      "PK",
		Destination: "DE",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, serverutils.ErrRecordGap))
}

func TestAssemblePropagatesRepositoryFailures(t *testing.T) {
	fix := defaultFixture()
	uow := &fakeComplianceUow{fix: fix, importErr: errors.New("connection reset")}
	svc := NewComplianceService(&fakeFactory{uow: uow}, logger.NewNopLogger())

	_, err := svc.Assemble(context.Background(), &dto.ComplianceRequest{
		GoodsCode:   "61102000",
		Origin:      "PK",
		Destination: "DE",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
