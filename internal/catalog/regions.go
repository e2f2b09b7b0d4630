// Package catalog holds the static reference data: Chilean regions with
// their comunas, and the seeded job category tree.
package catalog

// Region is an administrative region with a stable numeric code.
type Region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var regions = []Region{
	{1, "Región de Arica y Parinacota"},
	{2, "Región de Tarapacá"},
	{3, "Región de Antofagasta"},
	{4, "Región de Atacama"},
	{5, "Región de Coquimbo"},
	{6, "Región de Valparaíso"},
	{7, "Región Metropolitana de Santiago"},
	{8, "Región del Libertador General Bernardo O'Higgins"},
	{9, "Región del Maule"},
	{10, "Región de Ñuble"},
	{11, "Región del Biobío"},
	{12, "Región de La Araucanía"},
	{13, "Región de Los Ríos"},
	{14, "Región de Los Lagos"},
	{15, "Región de Aysén del General Carlos Ibáñez del Campo"},
	{16, "Región de Magallanes y de la Antártica Chilena"},
}

var comunasByRegion = map[int][]string{
	1: {"Arica", "Camarones", "Putre", "General Lagos"},
	2: {"Iquique", "Alto Hospicio", "Pozo Almonte", "Camiña", "Colchane", "Huara", "Pica"},
	3: {"Antofagasta", "Mejillones", "Sierra Gorda", "Taltal", "Calama", "Ollagüe", "San Pedro de Atacama", "Tocopilla", "María Elena"},
	4: {"Copiapó", "Caldera", "Tierra Amarilla", "Chañaral", "Diego de Almagro", "Vallenar", "Freirina", "Huasco", "Alto del Carmen"},
	5: {"La Serena", "Coquimbo", "Andacollo", "La Higuera", "Vicuña", "Paihuano", "Ovalle", "Monte Patria", "Punitaqui", "Combarbalá", "Illapel", "Salamanca", "Los Vilos", "Canela"},
	6: {"Valparaíso", "Viña del Mar", "Concón", "Quintero", "Puchuncaví", "Casablanca", "Juan Fernández", "San Antonio", "Cartagena", "El Tabo", "El Quisco", "Algarrobo", "Santo Domingo", "Quillota", "La Calera", "Hijuelas", "La Cruz", "Nogales", "San Felipe", "Los Andes", "Calle Larga", "Rinconada", "San Esteban", "Limache", "Olmué", "Villa Alemana", "Petorca", "Cabildo", "Zapallar", "Papudo", "Santa María", "Panquehue", "Llaillay", "Catemu"},
	7: {"Santiago", "Providencia", "Las Condes", "Vitacura", "Lo Barnechea", "Ñuñoa", "La Reina", "Macul", "Peñalolén", "La Florida", "Puente Alto", "San Bernardo", "La Cisterna", "El Bosque", "San Miguel", "San Joaquín", "Pedro Aguirre Cerda", "Lo Espejo", "Estación Central", "Cerrillos", "Maipú", "Pudahuel", "Quilicura", "Renca", "Conchalí", "Independencia", "Recoleta", "Huechuraba", "Colina", "Lampa", "Tiltil", "Pirque", "San José de Maipo", "Buin", "Paine", "Calera de Tango", "Peñaflor", "Talagante", "El Monte", "Isla de Maipo", "Padre Hurtado", "Curacaví", "María Pinto", "Melipilla", "Alhué", "San Pedro"},
	8: {"Rancagua", "Machalí", "Graneros", "San Francisco de Mostazal", "Doñihue", "Requínoa", "Coltauco", "Codegua", "Olivar", "Rengo", "Malloa", "Quinta de Tilcoco", "San Vicente", "Pichidegua", "Peumo", "Las Cabras", "Pichilemu", "Navidad", "La Estrella", "Marchigüe", "Litueche", "Peralillo", "Chépica", "Santa Cruz", "Palmilla", "Placilla", "Nancagua"},
	9: {"Talca", "Curicó", "Linares", "Cauquenes", "Constitución", "Maule", "San Clemente", "Pelarco", "Río Claro", "San Rafael", "Teno", "Romeral", "Molina", "Sagrada Familia", "Hualañé", "Licantén", "Vichuquén", "Colbún", "Longaví", "Parral", "Retiro", "Villa Alegre", "Yerbas Buenas", "Chanco", "Pelluhue"},
	10: {"Chillán", "Chillán Viejo", "Bulnes", "San Carlos", "San Nicolás", "Yungay", "Quirihue", "Cobquecura", "Ninhue", "Portezuelo", "Ránquil", "Coihueco", "Pinto", "El Carmen", "Pemuco", "San Ignacio", "Trehuaco", "Quillón"},
	11: {"Concepción", "Talcahuano", "Hualpén", "San Pedro de la Paz", "Chiguayante", "Penco", "Tomé", "Coronel", "Lota", "Florida", "Hualqui", "Santa Juana", "Lebu", "Arauco", "Cañete", "Los Álamos", "Tirúa", "Los Ángeles", "Nacimiento", "Negrete", "Mulchén", "Quilaco", "Quilleco", "Santa Bárbara", "Yumbel", "Cabrero", "Antuco", "Alto Biobío"},
	12: {"Temuco", "Padre Las Casas", "Angol", "Villarrica", "Pucón", "Freire", "Lautaro", "Nueva Imperial", "Carahue", "Saavedra", "Curacautín", "Lonquimay", "Victoria", "Collipulli", "Ercilla", "Traiguén", "Lumaco", "Melipeuco", "Cunco", "Teodoro Schmidt", "Gorbea", "Toltén", "Perquenco", "Cholchol", "Renaico", "Purén"},
	13: {"Valdivia", "Corral", "Lanco", "Los Lagos", "Máfil", "Mariquina", "Paillaco", "Panguipulli", "La Unión", "Río Bueno", "Lago Ranco", "Futrono"},
	14: {"Puerto Montt", "Puerto Varas", "Osorno", "Castro", "Ancud", "Quellón", "Calbuco", "Maullín", "Frutillar", "Llanquihue", "Fresia", "Purranque", "Río Negro", "San Juan de la Costa", "Chaitén", "Futaleufú", "Palena", "Hualaihué", "Queilén", "Quinchao", "Curaco de Vélez", "Dalcahue", "Puqueldón"},
	15: {"Coyhaique", "Aysén", "Cisnes", "Guaitecas", "Chile Chico", "Río Ibáñez", "Cochrane", "O'Higgins", "Tortel"},
	16: {"Punta Arenas", "Puerto Natales", "Porvenir", "Primavera", "Timaukel", "Laguna Blanca", "San Gregorio", "Río Verde", "Cabo de Hornos", "Antártica"},
}

// Regions returns every region in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// Comunas returns the comuna list for a region code.
func Comunas(regionID int) ([]string, bool) {
	comunas, ok := comunasByRegion[regionID]
	if !ok {
		return nil, false
	}
	out := make([]string, len(comunas))
	copy(out, comunas)
	return out, true
}

// ValidRegion reports whether the code names a known region.
func ValidRegion(regionID int) bool {
	_, ok := comunasByRegion[regionID]
	return ok
}

// ValidComuna reports whether comuna belongs to the region's known set.
func ValidComuna(regionID int, comuna string) bool {
	comunas, ok := comunasByRegion[regionID]
	if !ok {
		return false
	}
	for _, c := range comunas {
		if c == comuna {
			return true
		}
	}
	return false
}
