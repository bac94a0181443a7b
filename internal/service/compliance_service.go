package service

import (
	"context"
	"fmt"
	"time"

	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/entity"
	"trade-compliance-be/internal/pkg/logger"
	"trade-compliance-be/internal/pkg/serverutils"
	"trade-compliance-be/internal/repository/unitofwork"
)

// majorCurrencies is the fixed set reported in every record.
var majorCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CHF"}

type IComplianceService interface {
	// Assemble builds a ComplianceRecord for a committed code, origin and
	// destination. Every value comes from canonical database rows; a
	// missing row becomes an entry in unknowns, never a guessed value.
	Assemble(ctx context.Context, req *dto.ComplianceRequest) (*dto.ComplianceRecord, error)
}

type complianceService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewComplianceService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IComplianceService {
	return &complianceService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *complianceService) Assemble(ctx context.Context, req *dto.ComplianceRequest) (*dto.ComplianceRecord, error) {
	asOf, err := resolveAsOf(req.AsOf)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	nomenclature, err := s.buildNomenclatureWalk(ctx, uow, req.GoodsCode)
	if err != nil {
		return nil, err
	}
	if len(nomenclature) == 0 {
		return nil, fmt.Errorf("%w: goods code %s", serverutils.ErrRecordGap, req.GoodsCode)
	}

	importMeasures, err := uow.ImportMeasureRepository().FindApplicable(ctx, req.GoodsCode, []string{req.Origin}, asOf)
	if err != nil {
		return nil, err
	}

	exportMeasures, err := uow.ExportMeasureRepository().FindApplicable(ctx, req.GoodsCode, []string{req.Destination}, asOf)
	if err != nil {
		return nil, err
	}

	vatRate, err := uow.VatRateRepository().FindByCountry(ctx, req.Destination, asOf)
	if err != nil {
		return nil, err
	}

	exchangeRates, err := uow.ExchangeRateRepository().FindLatestByIso(ctx, majorCurrencies, asOf)
	if err != nil {
		return nil, err
	}

	conditions, err := uow.MeasureConditionRepository().FindByGoodsCode(ctx, req.GoodsCode)
	if err != nil {
		return nil, err
	}

	reachEntries, err := uow.ReachMapRepository().FindByCodePrefixes(ctx, codePrefixes(req.GoodsCode))
	if err != nil {
		return nil, err
	}

	importItems := importMeasuresToItems(importMeasures)
	exportItems := exportMeasuresToItems(exportMeasures)
	vatItems := vatRateToItems(vatRate)

	values := dto.DeterministicValues{
		GoodsNomenclatureEn:      nomenclature,
		ImportMeasures:           importItems,
		ExportMeasures:           exportItems,
		VatRates:                 vatItems,
		ExchangeRates:            exchangeRatesToItems(exchangeRates),
		MeasureConditions:        conditionsToItems(conditions),
		ReachEntries:             reachToItems(reachEntries),
		ApplicableRateResolution: resolveApplicableRate(importItems, req.Origin),
		Provenance:               buildProvenance(importItems, exportItems),
	}
	values.Completeness, values.Unknowns = assessCompleteness(importItems, exportItems, vatItems, len(reachEntries) > 0)

	s.log.Info("compliance", "assembled record", map[string]interface{}{
		"goods_code":      req.GoodsCode,
		"origin":          req.Origin,
		"destination":     req.Destination,
		"as_of":           formatDate(asOf),
		"import_measures": len(importItems),
		"unknowns":        len(values.Unknowns),
	})

	return &dto.ComplianceRecord{
		QueryParameters: dto.QueryParameters{
			GoodsCode:          req.GoodsCode,
			Origin:             req.Origin,
			Destination:        req.Destination,
			AsOf:               formatDate(asOf),
			ProductDescription: req.ProductDescription,
		},
		DeterministicValues: values,
	}, nil
}

// resolveAsOf parses the requested reference date, defaulting to today.
func resolveAsOf(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	asOf, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, serverutils.ErrValidation{Reason: "as_of must be a YYYY-MM-DD date"}
	}
	return asOf, nil
}

// buildNomenclatureWalk resolves the code and its ancestors down to the
// 4-digit heading: 6110200000 -> 61102000 -> 611020 -> 6110.
func (s *complianceService) buildNomenclatureWalk(ctx context.Context, uow unitofwork.UnitOfWork, goodsCode string) ([]dto.NomenclatureItem, error) {
	var walk []string
	for current := goodsCode; len(current) >= 4; current = current[:len(current)-2] {
		walk = append(walk, current)
		if len(current) == 4 {
			break
		}
	}

	nodes, err := uow.GoodsNomenclatureRepository().FindByCodes(ctx, walk)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*entity.GoodsNomenclature, len(nodes))
	for _, n := range nodes {
		byCode[n.GoodsCode] = n
	}

	// Keep the walk order: most specific code first.
	var items []dto.NomenclatureItem
	for _, code := range walk {
		n, ok := byCode[code]
		if !ok {
			continue
		}
		items = append(items, dto.NomenclatureItem{
			GoodsCode:         n.GoodsCode,
			Description:       n.DescriptionEn,
			Level:             n.Level,
			IsLeaf:            n.IsLeaf,
			ValidityStartDate: formatDate(n.ValidFrom),
			ValidityEndDate:   formatDatePtr(n.ValidTo),
		})
	}
	return items, nil
}

func codePrefixes(goodsCode string) []string {
	var prefixes []string
	if len(goodsCode) >= 6 {
		prefixes = append(prefixes, goodsCode[:6])
	}
	if len(goodsCode) >= 4 {
		prefixes = append(prefixes, goodsCode[:4])
	}
	return prefixes
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func dutyComponentsToItems(components []entity.DutyComponent) []dto.DutyComponentItem {
	items := make([]dto.DutyComponentItem, len(components))
	for i, c := range components {
		items[i] = dto.DutyComponentItem{
			Type:  c.Type,
			Value: c.Value,
			Unit:  c.Unit,
		}
	}
	return items
}

func importMeasuresToItems(measures []*entity.ImportMeasure) []dto.ImportMeasureItem {
	items := make([]dto.ImportMeasureItem, len(measures))
	for i, m := range measures {
		items[i] = dto.ImportMeasureItem{
			GoodsCode:      m.GoodsCode,
			OriginGroup:    m.OriginGroup,
			MeasureType:    m.MeasureType,
			DutyComponents: dutyComponentsToItems(m.DutyComponents),
			Applicability: dto.Applicability{
				ValidFrom: formatDate(m.ValidFrom),
				ValidTo:   formatDatePtr(m.ValidTo),
			},
			LegalBase: dto.LegalBase{
				Id:    m.LegalBaseId,
				Title: m.LegalBaseTitle,
			},
			FootnoteCode: m.FootnoteCode,
			CondCertCode: m.CondCertCode,
		}
	}
	return items
}

func exportMeasuresToItems(measures []*entity.ExportMeasure) []dto.ExportMeasureItem {
	items := make([]dto.ExportMeasureItem, len(measures))
	for i, m := range measures {
		items[i] = dto.ExportMeasureItem{
			GoodsCode:        m.GoodsCode,
			DestinationGroup: m.DestinationGroup,
			MeasureType:      m.MeasureType,
			DutyComponents:   dutyComponentsToItems(m.DutyComponents),
			Applicability: dto.Applicability{
				ValidFrom: formatDate(m.ValidFrom),
				ValidTo:   formatDatePtr(m.ValidTo),
			},
			LegalBase: dto.LegalBase{
				Id:    m.LegalBaseId,
				Title: m.LegalBaseTitle,
			},
			FootnoteCode: m.FootnoteCode,
			CondCertCode: m.CondCertCode,
		}
	}
	return items
}

func vatRateToItems(rate *entity.VatRate) []dto.VatRateItem {
	if rate == nil {
		return nil
	}
	return []dto.VatRateItem{{
		Country:             rate.CountryCode,
		StandardRatePercent: rate.StandardRate,
		ReducedRate1Percent: rate.ReducedRate1,
		ValidFrom:           formatDate(rate.ValidFrom),
		ValidTo:             formatDatePtr(rate.ValidTo),
	}}
}

func exchangeRatesToItems(rates []*entity.ExchangeRate) []dto.ExchangeRateItem {
	items := make([]dto.ExchangeRateItem, len(rates))
	for i, r := range rates {
		items[i] = dto.ExchangeRateItem{
			Iso:      r.Iso,
			Rate:     r.Rate,
			RateDate: formatDate(r.RateDate),
			Source:   r.Source,
		}
	}
	return items
}

func conditionsToItems(conditions []*entity.MeasureCondition) []dto.MeasureConditionItem {
	items := make([]dto.MeasureConditionItem, len(conditions))
	for i, c := range conditions {
		items[i] = dto.MeasureConditionItem{
			CertificateCode: c.CertificateCode,
			Action:          c.Action,
			ThresholdValue:  c.ThresholdValue,
			ThresholdUnit:   c.ThresholdUnit,
			Box44Codes:      c.Box44Codes,
			Notes:           c.Notes,
		}
	}
	return items
}

func reachToItems(entries []*entity.ReachMap) []dto.ReachEntryItem {
	items := make([]dto.ReachEntryItem, len(entries))
	for i, e := range entries {
		items[i] = dto.ReachEntryItem{
			GoodsCodePrefix: e.GoodsCodePrefix,
			EntryNo:         e.EntryNo,
			LimitValue:      e.LimitValue,
			Unit:            e.Unit,
			TestMethod:      e.TestMethod,
			ConditionalRule: e.ConditionalRule,
		}
	}
	return items
}

// extractAdValoremRate pulls the ad valorem percentage out of a duty
// expression, if one exists.
func extractAdValoremRate(components []dto.DutyComponentItem) *float64 {
	for _, c := range components {
		if c.Type == "ad_valorem" && (c.Unit == nil || *c.Unit == "percent") {
			v := c.Value
			return &v
		}
	}
	return nil
}

// resolveApplicableRate prefers a preferential measure for the exact
// origin over the ERGA OMNES fallback. When preference applies, the
// fallback rate is reported alongside the required proof.
func resolveApplicableRate(importItems []dto.ImportMeasureItem, origin string) *dto.ApplicableRateResolution {
	if len(importItems) == 0 {
		return nil
	}

	var preferential, ergaOmnes *dto.ImportMeasureItem
	for i := range importItems {
		m := &importItems[i]
		switch m.OriginGroup {
		case origin:
			if preferential == nil {
				preferential = m
			}
		case "ERGA OMNES":
			if ergaOmnes == nil {
				ergaOmnes = m
			}
		}
	}

	if preferential != nil {
		res := &dto.ApplicableRateResolution{
			PreferencePossible:    true,
			RequiredProof:         preferential.CondCertCode,
			ChosenMeasureOrigin:   origin,
			ChosenDutyRatePercent: extractAdValoremRate(preferential.DutyComponents),
		}
		if ergaOmnes != nil {
			res.FallbackIfNoProofPercent = extractAdValoremRate(ergaOmnes.DutyComponents)
		}
		return res
	}

	if ergaOmnes != nil {
		return &dto.ApplicableRateResolution{
			PreferencePossible:    false,
			ChosenMeasureOrigin:   "ERGA OMNES",
			ChosenDutyRatePercent: extractAdValoremRate(ergaOmnes.DutyComponents),
		}
	}

	return nil
}

func assessCompleteness(importItems []dto.ImportMeasureItem, exportItems []dto.ExportMeasureItem, vatItems []dto.VatRateItem, hasReach bool) (dto.Completeness, []dto.Unknown) {
	completeness := dto.Completeness{
		AllMeasuresHaveLegalBase: true,
		AllRequiredVatPresent:    len(vatItems) > 0,
		HasReachMapping:          hasReach,
	}
	var unknowns []dto.Unknown

	for _, m := range importItems {
		if m.LegalBase.Id == "" || m.LegalBase.Title == "" {
			completeness.AllMeasuresHaveLegalBase = false
		}
	}
	for _, m := range exportItems {
		if m.LegalBase.Id == "" || m.LegalBase.Title == "" {
			completeness.AllMeasuresHaveLegalBase = false
		}
	}

	if !completeness.AllMeasuresHaveLegalBase {
		unknowns = append(unknowns, dto.Unknown{
			Field:  "legal_base",
			Reason: "Some measures missing legal base information",
		})
	}
	if !completeness.AllRequiredVatPresent {
		unknowns = append(unknowns, dto.Unknown{
			Field:  "vat_rates",
			Reason: "No VAT rates found for destination country",
		})
	}
	if !completeness.HasReachMapping {
		unknowns = append(unknowns, dto.Unknown{
			Field:  "reach_mapping",
			Reason: "No REACH mapping found for goods code prefix",
		})
	}

	return completeness, unknowns
}

// buildProvenance deduplicates legal bases across all measures.
func buildProvenance(importItems []dto.ImportMeasureItem, exportItems []dto.ExportMeasureItem) dto.Provenance {
	seen := make(map[string]bool)
	var bases []dto.LegalBase

	add := func(base dto.LegalBase) {
		if base.Id == "" || seen[base.Id] {
			return
		}
		seen[base.Id] = true
		bases = append(bases, base)
	}

	for _, m := range importItems {
		add(m.LegalBase)
	}
	for _, m := range exportItems {
		add(m.LegalBase)
	}

	return dto.Provenance{LegalBases: bases}
}
