package country

// usStateCodes are US postal abbreviations. The ones that are also ISO codes
// (PA, CA, DE, IN, ...) are never accepted as bare explicit codes; "Remote - PA"
// is far more often Pennsylvania than Panama.
var usStateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true,
	"DE": true, "DC": true, "FL": true, "GA": true, "HI": true, "ID": true, "IL": true,
	"IN": true, "IA": true, "KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true, "MT": true, "NE": true,
	"NV": true, "NH": true, "NJ": true, "NM": true, "NY": true, "NC": true, "ND": true,
	"OH": true, "OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true,
	"TN": true, "TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true,
}

// ambiguousNames are canonical names left out of the alias table because they
// also name a US state.
var ambiguousNames = map[string]bool{
	"georgia": true,
}

// aliases maps normalized alias text (lowercase, accent-free, single spaces) to
// an ISO code. Canonical English names are added at construction time.
var aliases = map[string]string{
	// United States
	"usa": "US", "u s a": "US", "united states of america": "US", "etats unis": "US",
	"estados unidos": "US", "vereinigte staaten": "US", "stati uniti": "US",
	"new york": "US", "nyc": "US", "manhattan": "US", "brooklyn": "US",
	"san francisco": "US", "los angeles": "US", "chicago": "US", "boston": "US",
	"seattle": "US", "houston": "US", "dallas": "US", "atlanta": "US", "miami": "US",
	"philadelphia": "US", "pittsburgh": "US", "charlotte": "US", "denver": "US",
	"new jersey": "US", "new mexico": "US", "washington dc": "US", "washington d c": "US",
	"silicon valley": "US", "salt lake city": "US", "minneapolis": "US",
	"austin tx": "US", "dallas tx": "US", "houston tx": "US", "plano tx": "US",
	"irving tx": "US", "san antonio tx": "US", "fort worth tx": "US",
	"new york ny": "US", "jersey city": "US", "jersey city nj": "US", "newark nj": "US", "iselin nj": "US",
	"boston ma": "US", "chicago il": "US", "san francisco ca": "US", "los angeles ca": "US",
	"san diego ca": "US", "san jose ca": "US", "palo alto ca": "US", "menlo park ca": "US",
	"seattle wa": "US", "charlotte nc": "US", "raleigh nc": "US", "durham nc": "US",
	"atlanta ga": "US", "miami fl": "US", "tampa fl": "US", "jacksonville fl": "US",
	"panama city fl": "US",
	"lebanon pa": "US", "lebanon nh": "US", "lebanon oh": "US", "lebanon tn": "US",
	"lebanon in": "US", "lebanon mo": "US", "peru in": "US", "peru il": "US",
	"mexico ny": "US", "mexico mo": "US", "cuba ny": "US", "jordan ny": "US", "denver co": "US", "pittsburgh pa": "US",
	"philadelphia pa": "US", "wilmington de": "US", "columbus oh": "US",
	"cleveland oh": "US", "cincinnati oh": "US", "phoenix az": "US", "salt lake city ut": "US",
	"minneapolis mn": "US", "st louis mo": "US", "kansas city mo": "US",
	"baltimore md": "US", "richmond va": "US", "mclean va": "US", "nashville tn": "US",
	"memphis tn": "US", "detroit mi": "US", "indianapolis in": "US", "louisville ky": "US",
	"new orleans la": "US", "portland or": "US", "las vegas nv": "US", "boise id": "US",
	"omaha ne": "US", "des moines ia": "US", "milwaukee wi": "US", "birmingham al": "US",
	"little rock ar": "US", "columbia sc": "US", "sioux falls sd": "US",
	"stamford ct": "US", "greenwich ct": "US", "hartford ct": "US", "providence ri": "US",

	// United Kingdom
	"uk": "GB", "great britain": "GB", "britain": "GB", "england": "GB", "scotland": "GB",
	"wales": "GB", "northern ireland": "GB", "royaume uni": "GB", "reino unido": "GB",
	"vereinigtes konigreich": "GB", "regno unito": "GB",
	"london": "GB", "canary wharf": "GB", "city of london": "GB", "manchester": "GB",
	"edinburgh": "GB", "glasgow": "GB", "leeds": "GB", "bristol": "GB", "birmingham": "GB",
	"belfast": "GB", "bournemouth": "GB", "chester": "GB", "knutsford": "GB",

	// France
	"paris": "FR", "la defense": "FR", "lyon": "FR", "marseille": "FR", "lille": "FR",
	"toulouse": "FR", "bordeaux": "FR", "nantes": "FR", "nice": "FR", "strasbourg": "FR",
	"montpellier": "FR", "rennes": "FR", "ile de france": "FR", "francia": "FR",
	"frankreich": "FR", "montrouge": "FR", "puteaux": "FR", "nanterre": "FR",
	"saint denis": "FR", "fontenay sous bois": "FR", "guyancourt": "FR",

	// Rest of Europe
	"allemagne": "DE", "deutschland": "DE", "alemania": "DE", "germania": "DE",
	"frankfurt": "DE", "frankfurt am main": "DE", "berlin": "DE", "munich": "DE",
	"munchen": "DE", "hamburg": "DE", "dusseldorf": "DE", "cologne": "DE", "koln": "DE",
	"stuttgart": "DE",
	"espagne": "ES", "espana": "ES", "spanien": "ES", "spagna": "ES", "madrid": "ES",
	"barcelona": "ES", "bilbao": "ES", "malaga": "ES",
	"italie": "IT", "italia": "IT", "italien": "IT", "milan": "IT", "milano": "IT",
	"rome": "IT", "roma": "IT", "turin": "IT", "torino": "IT",
	"belgique": "BE", "belgien": "BE", "belgica": "BE", "brussels": "BE", "bruxelles": "BE",
	"brussel": "BE", "antwerp": "BE", "anvers": "BE",
	"suisse": "CH", "schweiz": "CH", "suiza": "CH", "svizzera": "CH", "zurich": "CH",
	"geneva": "CH", "geneve": "CH", "genf": "CH", "basel": "CH", "lugano": "CH",
	"lausanne": "CH", "bern": "CH",
	"pays bas": "NL", "niederlande": "NL", "paises bajos": "NL", "holland": "NL",
	"the netherlands": "NL", "amsterdam": "NL", "rotterdam": "NL", "the hague": "NL",
	"irlande": "IE", "dublin": "IE", "cork": "IE",
	"autriche": "AT", "osterreich": "AT", "vienna": "AT", "wien": "AT",
	"pologne": "PL", "polen": "PL", "warsaw": "PL", "warszawa": "PL", "krakow": "PL",
	"wroclaw": "PL", "lodz": "PL",
	"lisbon": "PT", "lisboa": "PT", "porto": "PT",
	"suede": "SE", "schweden": "SE", "stockholm": "SE",
	"norvege": "NO", "oslo": "NO",
	"danemark": "DK", "copenhagen": "DK", "kobenhavn": "DK",
	"finlande": "FI", "helsinki": "FI",
	"grece": "GR", "athens": "GR",
	"hongrie": "HU", "budapest": "HU",
	"roumanie": "RO", "bucharest": "RO", "bucuresti": "RO",
	"republique tcheque": "CZ", "tchequie": "CZ", "czech republic": "CZ", "prague": "CZ",
	"praha": "CZ",
	"sofia": "BG",
	"turquie": "TR", "turkey": "TR", "istanbul": "TR",
	"russie": "RU", "russian federation": "RU", "moscow": "RU",

	// Middle East and Africa
	"uae": "AE", "u a e": "AE", "emirats arabes unis": "AE", "dubai": "AE", "abu dhabi": "AE",
	"doha": "QA", "riyadh": "SA", "arabie saoudite": "SA", "tel aviv": "IL",
	"liban": "LB", "beirut": "LB",
	"maroc": "MA", "casablanca": "MA", "rabat": "MA",
	"tunisie": "TN", "tunis": "TN",
	"algerie": "DZ", "algiers": "DZ", "alger": "DZ",
	"egypte": "EG", "cairo": "EG",
	"afrique du sud": "ZA", "johannesburg": "ZA", "cape town": "ZA",
	"lagos": "NG", "nairobi": "KE", "dakar": "SN", "senegal": "SN", "abidjan": "CI",
	"ivory coast": "CI", "cameroun": "CM", "douala": "CM", "drc": "CD",

	// Asia Pacific
	"inde": "IN", "mumbai": "IN", "bangalore": "IN", "bengaluru": "IN", "chennai": "IN",
	"pune": "IN", "new delhi": "IN", "gurgaon": "IN", "gurugram": "IN", "noida": "IN",
	"singapour": "SG", "hongkong": "HK",
	"chine": "CN", "shanghai": "CN", "beijing": "CN", "shenzhen": "CN",
	"japon": "JP", "tokyo": "JP", "osaka": "JP",
	"coree du sud": "KR", "korea": "KR", "seoul": "KR",
	"taipei": "TW", "macau": "MO", "manila": "PH", "jakarta": "ID", "kuala lumpur": "MY",
	"bangkok": "TH", "hanoi": "VN", "ho chi minh city": "VN", "viet nam": "VN",
	"burma": "MM", "tbilisi": "GE",
	"australie": "AU", "sydney": "AU", "melbourne": "AU", "brisbane": "AU", "perth": "AU",
	"nouvelle zelande": "NZ", "auckland": "NZ", "wellington": "NZ",

	// Americas
	"toronto": "CA", "montreal": "CA", "vancouver": "CA", "calgary": "CA",
	"london ontario": "CA",
	"mexique": "MX", "mexico city": "MX", "ciudad de mexico": "MX",
	"bresil": "BR", "brasil": "BR", "sao paulo": "BR", "rio de janeiro": "BR",
	"argentine": "AR", "buenos aires": "AR",
	"chili": "CL", "colombie": "CO", "bogota": "CO", "perou": "PE",
	"cabo verde": "CV", "swaziland": "SZ",
}

// dottedAbbreviations join the alias table on the period-stripped retry, where
// "U.S." has become "us".
var dottedAbbreviations = map[string]string{
	"us":  "US",
	"uk":  "GB",
	"uae": "AE",
}
