package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

// Seeder fills an empty database with demo campaigns so the admin has
// something to show on first start.
type Seeder struct {
	CampaignRepo repository.CampaignRepositoryInterface
	AdGroupRepo  repository.AdGroupRepositoryInterface
	AdRepo       repository.AdRepositoryInterface
	Log          *zap.Logger
}

type SeedResult struct {
	Campaigns int
	AdGroups  int
	Ads       int
}

type seedAd struct {
	nombre, tipo, pardot string
	numero               int
}

type seedGroup struct {
	nombre, fsa, cohorte, publico string
	numero                        int
	ads                           []seedAd
}

type seedCampaign struct {
	campaign model.Campaign
	groups   []seedGroup
}

func sampleCampaign(medio, programa, tipo, nombre, facultad, modalidad, linea, lista, url, sf string) model.Campaign {
	return model.Campaign{
		Medio:            model.StrPtr(medio),
		ProgramaInteres:  model.StrPtr(programa),
		TipoCampana:      model.StrPtr(tipo),
		NombreCampania:   model.StrPtr(nombre),
		Facultad:         model.StrPtr(facultad),
		ModalidadEstudio: model.StrPtr(modalidad),
		Linea:            model.StrPtr(linea),
		ListaPardot:      model.StrPtr(lista),
		URLPrograma:      model.StrPtr(url),
		NombreSF:         model.StrPtr(sf),
	}
}

func sampleData() []seedCampaign {
	return []seedCampaign{
		{
			campaign: sampleCampaign("Google Ads", "MBA Ejecutivo", "Conversión", "MBA Ejecutivo 2024",
				"Administración", "Presencial", "Postgrado", "LST-MBA-001",
				"https://universidad.edu/mba-ejecutivo", "MBA Ejecutivo SF"),
			groups: []seedGroup{
				{nombre: "Ejecutivos Senior", numero: 1, fsa: "FSA-EXE-001", cohorte: "2024-Q1", publico: "Ejecutivos C-Level",
					ads: []seedAd{
						{"MBA para Líderes Corporativos", "Texto Expandido", "AD-MBA-LDR-001", 1},
						{"Acelera tu Carrera Ejecutiva", "Display Responsivo", "AD-MBA-CAR-002", 1},
					}},
				{nombre: "Profesionales Mid-Level", numero: 2, fsa: "FSA-PRO-002", cohorte: "2024-Q2", publico: "Profesionales 5-10 años",
					ads: []seedAd{
						{"MBA para Profesionales", "Búsqueda", "AD-MBA-PRO-004", 2},
					}},
			},
		},
		{
			campaign: sampleCampaign("Facebook Ads", "Ingeniería de Sistemas", "Reconocimiento", "Ingeniería de Sistemas Digital",
				"Ingeniería", "Virtual", "Pregrado", "LST-ING-SIS-001",
				"https://universidad.edu/ingenieria-sistemas", "Ingeniería Sistemas SF"),
			groups: []seedGroup{
				{nombre: "Estudiantes Tecnología", numero: 1, fsa: "FSA-TEC-003", cohorte: "2024-SEM1", publico: "Estudiantes 17-22 años",
					ads: []seedAd{
						{"Futuro en Tecnología", "Imagen", "AD-ING-FUT-006", 1},
						{"Programación y Desarrollo", "Carrusel", "AD-ING-PROG-007", 1},
					}},
			},
		},
		{
			campaign: sampleCampaign("LinkedIn Ads", "Derecho Empresarial", "Conversión", "Derecho Corporativo Premium",
				"Derecho", "Híbrida", "Especialización", "LST-DER-CORP-001",
				"https://universidad.edu/derecho-corporativo", "Derecho Empresarial SF"),
			groups: []seedGroup{
				{nombre: "Abogados Corporativos", numero: 1, fsa: "FSA-ABG-004", cohorte: "2024-CORP", publico: "Abogados 3+ años",
					ads: []seedAd{
						{"Especialización Legal Corporativa", "Sponsored Content", "AD-DER-ESP-008", 1},
					}},
			},
		},
	}
}

// SeedSampleData inserts the demo hierarchy when no campaign exists yet.
// It reports what was inserted; a zero result means the database already
// had data.
func (s *Seeder) SeedSampleData(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	n, err := s.CampaignRepo.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count campaigns: %w", err)
	}
	if n > 0 {
		s.logger().Info("campaigns present, skipping seed", zap.Int("campaigns", n))
		return res, nil
	}

	for _, sc := range sampleData() {
		c := sc.campaign
		if err := s.CampaignRepo.Create(ctx, &c); err != nil {
			return res, fmt.Errorf("seed campaign: %w", err)
		}
		res.Campaigns++

		for _, sg := range sc.groups {
			g := &model.AdGroup{
				CampaignID:  c.ID,
				NombreGrupo: model.StrPtr(sg.nombre),
				NumeroGrupo: model.IntPtr(sg.numero),
				Fsa:         model.StrPtr(sg.fsa),
				Cohorte:     model.StrPtr(sg.cohorte),
				TipoPublico: model.StrPtr(sg.publico),
			}
			if err := s.AdGroupRepo.Create(ctx, g); err != nil {
				return res, fmt.Errorf("seed ad group: %w", err)
			}
			res.AdGroups++

			for _, sa := range sg.ads {
				a := &model.Ad{
					AdGroupID:          g.ID,
					NombreAnuncio:      model.StrPtr(sa.nombre),
					TipoAnuncio:        model.StrPtr(sa.tipo),
					NomenclaturaPardot: model.StrPtr(sa.pardot),
					NumeroGrupo:        model.IntPtr(sa.numero),
				}
				if err := s.AdRepo.Create(ctx, a); err != nil {
					return res, fmt.Errorf("seed ad: %w", err)
				}
				res.Ads++
			}
		}
	}

	s.logger().Info("database seeded",
		zap.Int("campaigns", res.Campaigns),
		zap.Int("ad_groups", res.AdGroups),
		zap.Int("ads", res.Ads),
	)
	return res, nil
}

func (s *Seeder) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
