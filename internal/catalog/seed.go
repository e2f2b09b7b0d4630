package catalog

import (
	"fmt"
	"log/slog"

	"github.com/fidias-dev/technician-agenda/internal/models"
	"gorm.io/gorm"
)

// SeedJobCategories inserts the fixed job catalog on first startup. The
// existence check keeps it idempotent across restarts.
func SeedJobCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.JobCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check job categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := defaultJobCategories()
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed job categories: %w", err)
	}

	slog.Info("job categories seeded", "categories", len(categories))
	return nil
}

func subs(names ...string) []models.JobSubcategory {
	out := make([]models.JobSubcategory, len(names))
	for i, name := range names {
		out[i] = models.JobSubcategory{Name: name, DisplayOrder: i + 1}
	}
	return out
}

func defaultJobCategories() []models.JobCategory {
	return []models.JobCategory{
		{Name: "Calefont y Gas", Icon: "🔥", DisplayOrder: 1, Subcategories: subs(
			"Cambio de regulador y mangueras",
			"Certificación de instalaciones de gas",
			"Conversión gas natural / gas licuado",
			"Detección de fugas de gas",
			"Instalación de calefont",
			"Mantención preventiva",
			"Reparación de calefont",
			"Reparación de fugas de gas",
		)},
		{Name: "Cerrajería y Seguridad", Icon: "🔐", DisplayOrder: 2, Subcategories: subs(
			"Apertura de puertas",
			"Cambio de cerraduras",
			"Copia y reparación de llaves",
			"Instalación de chapas de seguridad",
			"Instalación de cerraduras digitales",
			"Refuerzo de puertas y ventanas",
		)},
		{Name: "Climatización", Icon: "❄️", DisplayOrder: 3, Subcategories: subs(
			"Instalación de aire acondicionado",
			"Instalación de estufas eléctricas",
			"Limpieza de filtros",
			"Mantención de aire acondicionado",
			"Reparación de equipos",
		)},
		{Name: "Construcción – Obras Menores", Icon: "🧱", DisplayOrder: 4, Subcategories: subs(
			"Instalación de cerámicas y revestimientos",
			"Obras menores en construcción",
			"Reparaciones estructurales menores",
			"Reparaciones post obra",
			"Tabiques y divisiones",
		)},
		{Name: "Destapes y Alcantarillado", Icon: "🪠", DisplayOrder: 5, Subcategories: subs(
			"Destape de duchas y desagües",
			"Destape de lavaplatos",
			"Destape de WC",
			"Detección de fugas en alcantarillado",
			"Hidrolavado de cañerías",
			"Inspección con cámara",
			"Limpieza de cámaras de alcantarillado",
		)},
		{Name: "Electricidad", Icon: "⚡", DisplayOrder: 6, Subcategories: subs(
			"Canalización y cableado",
			"Cambio de automático y diferencial",
			"Certificación eléctrica (TE1)",
			"Instalación de tableros eléctricos",
			"Instalación y cambio de enchufes",
			"Instalación de luminarias y focos",
			"Reparación de cortocircuitos",
		)},
		{Name: "Energía Solar", Icon: "☀️", DisplayOrder: 7, Subcategories: subs(
			"Instalación de paneles solares",
			"Limpieza de paneles solares",
			"Mantención de paneles solares",
			"Revisión de inversores y conexiones",
		)},
		{Name: "Gasfitería y Agua", Icon: "🚰", DisplayOrder: 8, Subcategories: subs(
			"Cambio de llaves, grifería y flexibles",
			"Detección de fugas de agua",
			"Instalación de filtros de agua",
			"Instalación de lavamanos y lavaplatos",
			"Reparación de cañerías (PVC, PPR, cobre)",
			"Reparación de fugas de agua",
			"Reparación de WC, estanques y sifones",
		)},
		{Name: "Jardinería y Exteriores", Icon: "🌳", DisplayOrder: 9, Subcategories: subs(
			"Corte de pasto",
			"Diseño de jardines",
			"Instalación de riego automático",
			"Mantención de jardines",
			"Poda de árboles y arbustos",
		)},
		{Name: "Limpieza y Mantención de Estanques de Agua", Icon: "🚰", DisplayOrder: 10, Subcategories: subs(
			"Informe de análisis microbiológico certificado (opcional)",
			"Inspección y mantención preventiva",
			"Lavado y vaciado del estanque",
			"Limpieza de estanques",
			"Limpieza manual del estanque",
			"Remoción de residuos",
			"Sanitización",
		)},
		{Name: "Mantención de Fosas Sépticas", Icon: "🚽", DisplayOrder: 11, Subcategories: subs(
			"Inspección y mantención preventiva",
			"Lavado y sanitización de fosa",
			"Limpieza de fosas sépticas",
			"Retiro y disposición de residuos",
			"Vaciado de fosa",
		)},
		{Name: "Mueblería y Carpintería", Icon: "🪑", DisplayOrder: 12, Subcategories: subs(
			"Ajuste de puertas y cajones",
			"Armado de muebles",
			"Cambio de bisagras y correderas",
			"Fabricación de muebles a medida",
			"Instalación de repisas y closets",
			"Reparación de muebles",
		)},
		{Name: "Pintura y Terminaciones", Icon: "🎨", DisplayOrder: 13, Subcategories: subs(
			"Barnizado y lacado de madera",
			"Instalación de papel mural",
			"Pintura interior y/o exterior",
			"Reparación de muros y grietas",
			"Terminaciones decorativas",
		)},
		{Name: "Piscina y Hot Tub", Icon: "🏊", DisplayOrder: 14, Subcategories: subs(
			"Aspirado y retiro de residuos",
			"Control y ajuste químico del agua",
			"Detección y reparación de fugas",
			"Instalación y mantención de calentadores de agua",
			"Limpieza de fondo y paredes",
			"Limpieza y cambio de filtros",
			"Limpieza y mantención de hot tub / jacuzzi",
			"Limpieza y mantención de piscinas",
			"Puesta en marcha y cierre de temporada",
			"Reparación de bombas y sistemas de filtrado",
		)},
		{Name: "Reparación de Electrodomésticos", Icon: "🔧", DisplayOrder: 15, Subcategories: subs(
			"Campanas extractoras",
			"Cocinas y hornos",
			"Lavavajillas",
			"Lavadoras y secadoras",
			"Refrigeradores y congeladores",
		)},
		{Name: "Sistemas de Protección Contra Incendios", Icon: "🚒", DisplayOrder: 16, Subcategories: subs(
			"Mantención de extintores",
			"Mantención de sistemas contra incendios",
			"Pruebas y certificación de sistemas",
			"Reposición y recarga de extintores",
			"Revisión de redes húmedas y secas",
		)},
		{Name: "Ventanas, Termopanel y Vidrios", Icon: "🪟", DisplayOrder: 17, Subcategories: subs(
			"Ajuste de cierres y correderas",
			"Cambio de vidrios simples y dobles",
			"Instalación de mallas de seguridad",
			"Instalación de ventanas termopanel",
			"Reparación de termopanel",
			"Sellos y aislación térmica/acústica",
		)},
	}
}
