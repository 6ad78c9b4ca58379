package classify

import (
	"slices"
	"strings"
)

// Rule maps a pattern, matched against soft-normalized text, to a category.
// Tag is a short label reported by ClassifyWithExplanation; when empty the
// matched substring is reported instead.
type Rule struct {
	Pattern  string
	Category string
	Tag      string
}

// Early-career wording: internships, off-cycles, placements, graduate schemes.
// "internal" and roman-numbered "stage ii" are not early-career.
const earlyCareerTerms = `(?:\bintern(?!al)\b|internship|off[-\s]?cycle|industrial\s+placement|\bsummer\s+analyst\b|\bgraduate\b|placement|\bstage\b(?!\s*[ivx]+\b))`

const (
	marketsAfterTerms  = `(?:\bglobal\s+markets?\b|\bsales\s*&\s*trading\b|\bsales\s+and\s+trading\b|\bs&?t\b|\bficc\b|\bfx\b|\brates?\b|\bcredit\b|\bequities?\s+(?:sales|trading)\b|\bderivatives?\s+(?:sales|trading)\b)`
	marketsBeforeTerms = `(?:\bglobal\s+markets?\b|\bsales\s*&\s*trading\b|\bsales\s+and\s+trading\b|\bs&?t\b|\bficc\b)`
)

// earlyCareerMarketsShape is an early-career term within 40 characters of a
// Global Markets / S&T / FICC term, in either order.
const earlyCareerMarketsShape = `\b(?:` +
	earlyCareerTerms + `[\s\S]{0,40}?` + marketsAfterTerms +
	`|` +
	marketsBeforeTerms + `[\s\S]{0,40}?` + earlyCareerTerms +
	`)\b`

// guardWindow bounds how far from the early-career markets match a guard term
// is looked for.
const guardWindow = `120`

// marketsGuard is one family of terms that disqualifies an early-career
// markets title from the sales category, with the category it is routed to.
type marketsGuard struct {
	terms    string
	category string
	tag      string
}

var marketsGuards = []marketsGuard{
	{`internal\s+audit|audit`, InternalAudit, "audit"},
	{`risk`, RiskMarket, "risk"},
	{`treasury|alm`, Treasury, "treasury"},
	{`capital\s+markets?|ecm\b|dcm\b|investment\s+banking`, CorporateBanking, "capital markets"},
	{`corporate\s+banking|cash\s+management|transaction\s+banking|\bcoverage(?!\s*markets)`, CorporateBanking, "corporate banking"},
	{`data\s+(?:analyst|scientist|engineer)`, DataQuant, "data"},
	{`\bstrats?\b|quantitative\s+strats?|strategists?`, QuantStrats, "strats"},
	{`support|help\s*desk|l1|application\s+support|prod(?:uction)?\s+support`, ITSupport, "support"},
	{`technology|tech\b|it\b`, ITEngineering, "technology"},
}

func guardAlternation() string {
	terms := make([]string, len(marketsGuards))
	for i, g := range marketsGuards {
		terms[i] = g.terms
	}
	return `\b(?:` + strings.Join(terms, "|") + `)\b`
}

// guardAhead holds when terms occur within the window starting at the current
// position.
func guardAhead(terms string) string {
	return `(?=[\s\S]{0,` + guardWindow + `}\b(?:` + terms + `)\b)`
}

// earlyCareerMarkets is the guarded sales rule: the early-career markets shape,
// provided no guard term appears in the window starting at the match.
var earlyCareerMarkets = `(?![\s\S]{0,` + guardWindow + `}` + guardAlternation() + `)` + earlyCareerMarketsShape

// guardDeflections route early-career markets titles that carry a guard term
// within the window on either side of the match to the guard's own function,
// ahead of every broad markets rule.
func guardDeflections() []Rule {
	rules := make([]Rule, len(marketsGuards))
	for i, g := range marketsGuards {
		before := `\b(?:` + g.terms + `)\b[\s\S]{0,` + guardWindow + `}?`
		rules[i] = Rule{
			Pattern:  `(?:` + before + `|` + guardAhead(g.terms) + `)` + earlyCareerMarketsShape,
			Category: g.category,
			Tag:      "gm/s&t intern guard: " + g.tag,
		}
	}
	return rules
}

// manualOverrides redirect known-ambiguous phrases before any other rule.
var manualOverrides = []Rule{
	{`\bglobal\s+markets?\b.{0,20}\bexecutive\s+assistant\b`, AdminAssistant, "manual override"},
	{`\bmarkets?\s+ea\b`, AdminAssistant, "manual override"},
	{`\bexecutive\s+assistant\b.{0,20}\b(global\s+)?markets?\b`, AdminAssistant, "manual override"},
}

// priorityRules are the narrow leaves that must win over the broad cascade.
var priorityRules = []Rule{
	// Investment banking leaves.
	{`\b(m&a|mergers?\s+&\s+acquisitions?)\b`, IBMergersAcquisitions, "IB M&A"},
	{`\b(ecm|equity\s+capital\s+markets?|ipo|follow[-\s]?on|rights?\s+issue|accelerated\s+bookbuild|abb|block\s+trade)\b`, IBEquityCapitalMarkets, ""},
	{`\b(dcm|debt\s+capital\s+markets?|bond\s+(?:issuance|origination)|mt[np]\b|emtns?|liability\s+management|(tender|exchange)\s+offer|consent\s+solicitation)\b`, IBDebtCapitalMarkets, ""},
	{`\b(lev(?:eraged)?\s*fin(?:ance)?|levfin|lbo|unitranche|mezz(?:anine)?|high[-\s]?yield)\b`, IBLeveragedFinance, ""},
	{`\b(syndicate|syndication|book\s*runner|book[-\s]*building|bookrunner)\b`, IBSyndicate, ""},
	{`\b(structured\s+finance|securiti[sz]ation|abs\b|clo\b|rmbs|cmbs|abcp|conduit|warehouse\s+facility)\b`, IBStructuredFinance, ""},
	{`\b(project\s+finance|infrastructure\s+finance|ppp|concession|non[-\s]?recourse)\b`, IBProjectFinance, ""},
	{`\b(restructuring|special\s+situations|distressed\s+(?:debt|assets?|m&a)|turnaround)\b`, IBRestructuring, ""},

	// Transaction banking leaves.
	{`\b(cash\s+management|liquidity\s+management|notional\s+pooling|payables|receivables|host[-\s]?to[-\s]?host|gps\b|global\s+payment[s]?\s+solutions?)\b`, TxBCashManagement, ""},
	{`\b(trade\s+finance|documentary\s+(?:trade|collections?)|letters?\s+of\s+credit|(?:standby|sb)[-\s]?lc|bank\s+guarantees?)\b`, TxBTradeFinance, ""},
	{`\b(working\s+capital|supply\s+chain\s+finance|scf|receivables\s+finance|payables\s+finance|reverse\s+factoring|confirming)\b`, TxBWorkingCapital, ""},
	{`\b(export\s+finance|export\s+credit\s+agenc(?:y|ies)|eca\s+finance|ukef|sace|serv|k[-\s]?exim|bpi(?:france)?|euler\s+hermes)\b`, TxBExportFinance, ""},

	// Markets support operations.
	{`\b(trade\s+support)\b`, OpsMarketsSupport, ""},
	{`\b(trade\s+capture|trade\s+booking|booking\s+(?:analyst|support))\b`, OpsMarketsSupport, ""},
	{`\b(prime\s+(?:brokerage|services)|\bpbs?\b)\b`, OpsMarketsSupport, ""},
	{`\b((?:etd|listed|futures?|options?|otc|derivatives?)\s+clearing|clearing\s+(?:member|broker|services?))\b`, OpsMarketsSupport, ""},

	// Buy side leaves.
	{`\b(private\s+equity|buy[-\s]?out(s)?|lbo\b|general\s+partner|limited\s+partner)\b`, PrivateEquity, ""},
	{`\b(venture\s+capital|seed|series\s+[abcde]\b|pre[-\s]?seed|vc\b)\b`, VentureCapital, ""},
	{`\b(hedge\s+funds?|multi[-\s]?strategy|long/?short|global\s+macro|event[-\s]?driven|arbitrage|systematic|cta\b|managed\s+futures)\b`, HedgeFunds, ""},

	// Wealth leaves.
	{`\b(lombard|wealth\s+lending|margin\s+loan|credit\s+advisory)\b`, WealthLending, ""},
	{`\b(trust\s+(?:officer|services?)|fiduciary|estate\s+planning|succession)\b`, WealthTrust, ""},
	{`\b(investment\s+advis(?:or|ory))\b`, WealthAdvisory, ""},

	// IT leaves; the base cascade keeps the generic IT fallback.
	{`\b(developer|software\s+engineer|full\s?stack|front\s?end|frontend|back\s?end|typescript|react|angular|node\.?js?|python|java|c\+\+|c#|php|golang|go\s+(?:developer|engineer))\b`, ITSoftware, ""},
	{`\b(cyber\s*security|soc\b|siem\b|pentest|appsec|infosec|red\s+team|secops)\b`, ITSecurity, ""},
	{`\b(devops|sre|platform|cloud|kubernetes|docker|terraform)\b`, ITPlatform, ""},
	{`\b(sap|salesforce|servicenow)\b`, ITEnterpriseApps, ""},
	{`\b(application\s+support|prod(?:uction)?\s+support|help\s*desk|service\s+desk|desktop\s+support|l[12]\b)\b`, ITSupport, ""},
	{`\b(e[-\s]?trading|etrading|market\s+data|low[-\s]?latency)\b`, ITMarketsTech, ""},

	// Data / quant leaves.
	{`\b(data\s+scientist|machine\s+learning|deep\s+learning|nlp|llm)\b`, DataScience, ""},
	{`\b(data\s+engineer|analytics\s+engineer|databricks|spark|airflow|kafka|hadoop|snowflake|dbt|mlops|feature\s+store)\b`, DataEngineering, ""},
	{`\b(data\s+analyst|bi\b|power\s*bi|tableau|digital\s+analytics|a/?b\s*test(?:ing)?|experimentation)\b`, DataAnalytics, ""},
	{`\b(quants?|quantitative\s+(?:research|analyst|developer)|strats?)\b`, QuantStrats, ""},
	{`\brisk\s+analytics?\b`, DataQuant, ""},

	// Product, project, business analysis.
	{`\b(product\s+manager|product\s+owner|chef\s+de\s+produit)\b`, ProductManagement, ""},
	{`\b(business\s+analyst|functional\s+analyst|amoa|moa)\b`, BusinessAnalysis, ""},
	{`\b(project\s+manager|program\s+manager|pmo\b)\b`, ProjectManagement, ""},
	{`\b(scrum\s+master|agile\s+(?:coach|lead))\b`, AgileDelivery, ""},

	// Strategy / consulting leaves.
	{`\b(corporate\s+strategy|strategic\s+planning)\b`, CorporateStrategy, ""},
	{`\b(transformation\s+office|change\s+manager|operating\s+model)\b`, TransformationOffice, ""},
	{`\b(target\s+operating\s+model|tom\b)\b`, TransformationOffice, ""},
	{`\b(post[-\s]?merger\s+integration|pmi\b)\b`, ManagementConsulting, ""},
	{`\b(management\s+consult(ing|ant))\b`, ManagementConsulting, ""},

	// Finance control leaves.
	{`\b(product\s+control|p&?l\b|pnl\b|ipv|independent\s+price\s+verification|valuation(?:s)?\s+control)\b`, ProductControl, ""},
	{`\b(account(?:ing)?|general\s+ledger|gl\b|ifrs|us\s+gaap|consolidation|group\s+reporting)\b`, Accounting, ""},
	{`\b(financial\s+report(?:ing)?)\b`, FinancialReporting, ""},
	{`\b(fp&a|budget(?:ing)?|forecast(?:ing)?|planning)\b`, FPandA, ""},
	{`\b(internal\s+audit|sox\b)\b`, InternalAudit, ""},

	// Retail leaves.
	{`\b(call\s*center|contact\s*center|callcenter|ccc)\b`, RetailBranch, ""},
	{`\b(mortgage|baufinanzierung|hipotecario)\b`, RetailMortgage, ""},
	{`\b(conseiller\s+pro|sme\s+banking|small\s+business\s+banker|business\s+advisor)\b`, RetailSmallBusiness, ""},

	// Legal leaves.
	{`\b(company\s+secretary|domiciliation)\b`, LegalCompanySecretary, "CoSec/Domiciliation"},
	{`\b(privacy|data\s+protection|dpo|rgpd|gdpr)\b`, LegalPrivacy, ""},
	{`\b(fiscaliste|tax|fiscal(?:ite|idad))\b`, LegalTax, ""},
	{`\b(contract\s+manager|contracts?|commercial\s+contracts?)\b`, LegalContracts, ""},
	{`\b(juriste|lawyer|attorney|legal\s+counsel)\b`, LegalCorporate, ""},

	// Explicit reroutes.
	{`\bcustomer\s+journey\s+(?:specialist|manager|lead)\b`, MarketingComms, ""},
}

// baseRules is the broad cascade. Order is load-bearing: the first match wins.
var baseRules = []Rule{
	// Trade guard rails: trade next to an operations word is never trading.
	{`\btrade\b(?!r|ing)\b.{0,20}\b(transaction|services?|processing|operations?|ops?|operator|analyst|control|support|documentation)\b`, OpsMiddleOffice, ""},
	{`\b(transaction|services?|processing|operations?|ops?|operator|analyst|control|support|documentation)\b.{0,20}\btrade\b(?!r|ing)\b`, OpsMiddleOffice, ""},

	// Global Markets early-career.
	{`\bglobal\s+markets?\b(?:(?!executive|assistant|ea|product\s+control|operations?|murex|support)[\s\w]{0,40})\b(analyst|intern(?:ship)?|off[-\s]?cycle|industrial\s+placement|summer|graduate)\b`, MarketsSales, "GM + early-career"},
	{earlyCareerMarkets, MarketsSales, "gm/s&t intern -> sales"},

	// Insight weeks, graduate talent programmes.
	{`\binsight\s+week\b.{0,40}\b(tech|technology|engineering|software|data|cyber|it|et[r]?ading)\b`, ITEngineering, ""},
	{`\binsight\s+week\b.{0,40}\b(operations?|accountanc?y|finance|controllers?)\b`, FinanceControl, ""},
	{`\bgraduate\s+talent\s+program(?:me)?\b.{0,40}\b(tech|technology|engineering|software|data|cyber|it)\b`, ITEngineering, ""},
	{`\bgraduate\s+talent\s+program(?:me)?\b.{0,40}\b(ops?|operations?)\b`, OpsBackOffice, ""},
	{`\bgraduate\s+talent\s+program(?:me)?\b.{0,40}\b(gwm|wmch|wealth|private\s+bank(?:ing)?)\b`, WealthManagement, ""},
	{`\b(summer|off[-\s]?cycle|industrial\s+placement)\s+(?:analyst|associate|intern(?:ship)?)\b.{0,40}\b(tech|technology|engineering|software|data|ml|ai|cyber|it)\b`, ITEngineering, ""},
	{`\btechnology\s+summer\s+analyst\b`, ITEngineering, ""},

	// Intern, graduate and summer roles routed by domain.
	{`\b(global\s+markets?|sales\s*&\s*trading|s&t|ficc|fx|rates?|credit|equities?)\b.{0,40}\b(summer|graduate|off[-\s]?cycle|intern(ship)?)\b`, MarketsSales, "graduate+markets"},
	{`\boperations?\b.{0,40}\b(summer|graduate|off[-\s]?cycle|intern(ship)?)\b`, OpsBackOffice, "graduate+ops"},
	{`\b(engineering|technology|platform\s+solutions|developer)\b.{0,40}\b(summer|graduate|off[-\s]?cycle|intern(ship)?)\b`, ITEngineering, "graduate+tech"},
	{`\b(risk|finance|audit|controlling|fp&a)\b.{0,40}\b(summer|graduate|off[-\s]?cycle|intern(ship)?)\b`, FinanceControl, "graduate+risk/finance"},
	{`\b(corporate\s+banking|coverage|transaction\s+banking|cash\s+management)\b.{0,40}\b(summer|graduate|off[-\s]?cycle|intern(ship)?)\b`, CorporateBanking, "graduate+corpbank"},
	{`\b(program|programme|graduate|intern(?:ship)?)\b.{0,40}\b(tech|technology|engineering|software|data|ml|ai|cyber|it)\b`, ITEngineering, ""},
	{`\b(program|programme|graduate|intern(?:ship)?)\b.{0,40}\b(ops?|operations?)\b`, OpsBackOffice, "program -> ops"},
	{`\b(program|programme|graduate|intern(?:ship)?)\b.{0,40}\b(gwm|wmch|wealth|private\s+bank(?:ing)?)\b`, WealthManagement, "program -> wealth"},
	{`\b(program|programme|graduate|intern(?:ship)?)\b.{0,40}\b(risk|operational\s+risk|non[-\s]?financial\s+risk)\b`, RiskOperational, "program -> risk"},
	{`\b(program|programme|graduate|intern(?:ship)?)\b.{0,40}\b(compliance|aml|kyc|financial\s+crime|afc)\b`, Compliance, "program -> compliance"},
	{`\b(program|programme|graduate|intern(?:ship)?)\b.{0,40}\b(asset\s+management|investment\s+management|portfolio)\b`, AssetManagement, "program -> buy side"},
	{`\b(program|programme|graduate|intern(?:ship)?)\b.{0,40}\b(investment\s+banking|corporate\s+finance|m&a|mergers?\s+&\s+acquisitions?|coverage)\b`, CorporateBanking, "program -> coverage"},

	// IT / engineering.
	{`\b(software\s+engineering|e[-\s]?trading|etrading|penetration\s+tester|red\s+team|soc\b|siem\b|ciberseguridad|cyber\s*security|information\s+security|secops|pentest|appsec|infosec)\b`, ITEngineering, ""},
	{`\b(developer|software\s+engineer|full\s?stack|front\s?end|frontend|back\s?end|devops|cloud|sre|network|reseau|sysadmin|windows|linux|kubernetes|docker|terraform|sap|salesforce|servicenow|mobile|ios|android|architecte|software\s+architect|application|api|microservices|cicd|ci/?cd|typescript|react|angular|node\.?.?js?|python|java|c\+\+|c#|php|ruby|go(?![-\s]?to[-\s]?market)|golang|(?:\.?net|dotnet)\b|tech(?:nical)?\s+lead|lead\s+(?:developer|engineer)|security|soc\b|siem\b|information\s+technology|market\s+data|application\s+support|prod(?:uction)?\s+support|middleware|soa\b|help(?:\s*desk)?|desktop\s+support|service\s+desk|okta|active\s+directory|\bad\b|office\s*365|m365|o365|exchange\s+online|intune|vmware|citrix|cisco|checkpoint|palo\s+alto|fortigate|zscaler|sailpoint|sso|saml|oauth|grpc|message\s+queue|\bmq\b|ibm\s+mq|tibco|mulesoft)\b`, ITEngineering, ""},
	{`\b(automation\s+tester|qa\s+engineer|selenium|test\s+automation|automation\s+qa)\b`, ITEngineering, ""},
	{`\bfachinformatiker\b`, ITEngineering, ""},
	{`\bprogrammer\s+analyst\b`, ITEngineering, ""},
	{`\bsite\s+reliability\s+engineer\b`, ITEngineering, ""},
	{`\bdeveloppeur\b`, ITEngineering, ""},
	{`\bingenieur\b`, ITEngineering, ""},
	{`\bengineer\b`, ITEngineering, ""},
	{`\bsupport\s+technique\b`, ITEngineering, ""},
	{`\bsoftware\s+solutions?\s+development\b`, ITEngineering, ""},
	{`\bpricing\b.{0,20}\b(developer|development|engineer)\b`, ITEngineering, ""},
	{`\befx\b.{0,20}\b(developer|development|engineer|platform|devops)\b`, ITEngineering, ""},
	{`\bdeveloppeur\b|\bingenieur\b|\bengineer\b`, ITEngineering, ""},

	// Generic technology internships and programmes.
	{`\btechnology\b.{0,20}\b(intern|internship|program|programme|placement|summer)\b`, ITEngineering, ""},

	// Data / quant.
	{`\b(adobe\s+analytics|cja\b|digital\s+analytics|a/?b\s*test(?:ing)?|experimentation)\b`, DataQuant, ""},
	{`\b(data\s+scientist|data\s+analyst(?:e)?|data\s+engineer|analytics\s+engineer|ml\s+engineer|machine\s+learning|deep\s+learning|nlp|llm|bi\b|power\s*bi|tableau|snowflake|databricks|dbt\b|spark|hadoop|airflow|kafka|sql\b|no\s?sql|quant\b|quantitative|modeller|modeler|model(?:ing|isation)|time\s+series|data\s+quality|data\s+governance|mdm\b|data\s+lineage|data\s+steward|mlops|model\s+ops?|model\s+governance|feature\s+store|feature\s+engineering|causal|bayesian|forecast(?:ing)?|xgboost|pytorch|tensorflow|sklearn|pandas|numpy|stochastic)\b`, DataQuant, ""},
	{`\bdata\s+(?:analyst|science|scientist|engineer|intern)\b`, DataQuant, ""},
	{`\bdata\b.{0,20}\banalyst\b`, DataQuant, ""},
	{`\bdata\s+and\s+analytics\b`, DataQuant, ""},
	{`\banalyste\s+quantitatif\b`, DataQuant, ""},
	{`\bdata\s+architect\b`, DataQuant, ""},
	{`\banalytics\s+specialist\b`, DataQuant, ""},

	// Product, PMO, change.
	{`\b(business\s+management|project\s+manager|chef\s+de\s+projet|pmo\b|business\s+analyst|ba\b(?![a-z])|functional\s+analyst|product\s+owner|product\s+manager|scrum\s+master|agile\s+(?:coach|lead|project)|transformation|change\s+manager|moa|amoa|consultant\s+(?:moa|process|agile)|user\s+stories?|backlog|roadmap|acceptance\s+criteria|\buat\b|requirements?\s+(?:gathering|analysis)|process\s+mapping|\bbpmn\b|\braci\b|business\s+case|stakeholder\s+management|\bjira\b|\bconfluence\b|\bkanban\b|chef\s+de\s+produit|chargee?\s+de\s+produit)\b`, ProductProject, ""},
	{`\b(product\s+manager|product\s+owner|project\s+manager)\s+(?:intern|analyst|associate)?\b`, ProductProject, ""},
	{`\bbusiness\s+solutions?\s+analyst\b`, ProductProject, ""},
	{`\bproject\s+management\s+officer\b`, ProductProject, ""},

	// Strategy / consulting.
	{`\b(strategy|strategie|strategic|consulting|consultant\s+strategie|transformation\s+office|operating\s+model|tom\b|target\s+operating\s+model|due\s+diligence|\bpmi\b|post[-\s]?merger\s+integration|strategy\s+consultant)\b`, StrategyConsulting, ""},
	{`\bconsultant\b`, StrategyConsulting, ""},

	// HR, comms, marketing.
	{`\b(rh|ressources\s+humaines|human\s+resources|hrbp|people\s+partner|people\s+ops?|talent\s+acquisition|recruteur|recruiter|payroll(?!\s*(provider|service|vendor|outsourc))|paie|comp(?:ensation)?(?:\s*&\s*benefits)?|benefits|c&b|learning\s*&?\s*development|l&d|personalreferent|talent\s+management|hris|sirh|workday|successfactors|cornerstone|people\s+analytics|employee\s+relations|labou?r\s+relations|reward|remuneration|avantages?\s+sociaux|total\s+rewards?|org(?:anisational|anizational)?\s+development|\bod\b|org\s+design|communications?|comms|brand|pr|relations?\s+presse)\b`, HRPeople, ""},
	{`\b(marketing|ux|ui|designer|growth|seo|sea|social\s+media|community\s+manager|content|copywriter|campaign\s+manager|marcom|go[-\s]?to[-\s]?market|\bgtm\b|\babm\b|crm\s+marketing|email\s+marketing|performance\s+marketing|paid\s+(?:search|social|media)|media\s+buy(?:ing)?|digital\s+acquisition|display\s+advertising|product\s+marketing)\b`, MarketingComms, ""},
	{`\bhr\b`, HRPeople, ""},
	{`\brecrutement\b`, HRPeople, ""},
	{`\badjoint(?:e)?\s+administratif(?:-ive)?\b`, AdminAssistant, ""},
	{`\badministrativ[oa]\b`, AdminAssistant, ""},
	{`\brecruitment\b`, HRPeople, ""},
	{`\bcampus\s+management\b`, HRPeople, ""},
	{`\buniversity\s+relations\b`, HRPeople, ""},

	// Executive assistants.
	{`\b(executive\s+assistant|assistant(?:e)?\s+de\s+direction|personal\s+assistant|office\s+manager)\b`, AdminAssistant, ""},

	// Operations.
	{`\b(middle\s*office|trade\s+support|pnl|p&l|risk\s+pnl|product\s+control|p&l\s+control|pnl\s+control|valuation(?:s)?\s+control|valuation(?:s)?\b|independent\s+price\s+verification|ipv)\b`, OpsMiddleOffice, ""},
	{`\b(fund\s+account(?:ant|ing)|fund\s+admin(?:istration)?|transfer\s+agent|ta\b|nav\s+(?:production|calc(?:ulation)?)|dealing\s+desk|subscriptions?|redemptions?|asset\s+servicing|custody|global\s+custody|fund\s+distribution|fund\s+execution)\b`, OpsFundAdmin, ""},
	{`\b(back\s*office|settlement[s]?|reconciliation|confirmations?|clearing|corporate\s+actions?|static\s+data|reference\s+data|securities?\s+master\s+data|collateral|margin|custody|swift|sepa|ach\b|payments?\s+operations?|banking\s+operations|securities\s+services|cheques?|checks?\s+processing|nostro|prematch(?:ing)?|affirmation|\bomgeo\b|\bctm\b|\balert\b|mt\d{3}|iso\s*20022|camt\d*|pacs\d*|\bstp\b|exceptions?\s+management|investor\s+services|referential\s+data|static\s+referential)\b`, OpsBackOffice, ""},
	{`\b(securities?\s+lending).{0,40}\b(ops?|operations?|middle\s*office|trade\s+support)\b`, OpsMiddleOffice, ""},
	{`\bbooking\b.{0,50}\b(ops?|operations?|support|analyst|mo|middle\s*office|trade\s+capture)\b`, OpsMiddleOffice, ""},

	// Procurement and remaining back-office titles.
	{`\b(procurement|purchas(?:e|ing)|acheteur|achats?|sourcing|einkaufer|einkaeufer|einkauf|compras)\b`, OpsBackOffice, ""},
	{`\bsecurities?\s+operations?\s+representative\b`, OpsBackOffice, ""},
	{`\boperations?\s+representative\b`, OpsBackOffice, ""},
	{`\bclient\s+operations?\s+officer\b`, OpsBackOffice, ""},
	{`\bpayments?\s+(?:processing|processor)\b`, OpsBackOffice, ""},
	{`\boperations?\s+analyst\b`, OpsBackOffice, ""},
	{`\boperations?\s+officer\b`, OpsBackOffice, ""},
	{`\boperat(?:ions|oins)\s+processor\b`, OpsBackOffice, ""},
	{`\bdocument\s+administrator\b`, OpsBackOffice, ""},
	{`\banalista\s+operativo\b`, OpsBackOffice, ""},
	{`\bgestion\s+des\s+credits?\b`, OpsBackOffice, ""},
	{`\bcharge(?:\([^)]+\))?\s+operations?\b`, OpsBackOffice, ""},
	{`\boperations?\s+(?:analyst|officer)\b`, OpsBackOffice, ""},

	// Compliance / AFC.
	{`\b(anti[-\s]?financial\s+crime|afc\b|aml|kyc|onboarding|client\s+due\s+diligence|lcb\s?ft|lab/?ft|sanctions?|ofac|embargo|pep|adverse\s+media|transaction\s+monitoring|financial\s+crimes?|compliance|conformite|regulatory\s+(?:relations|affairs)|screening|name\s+screening|watchlist|transaction\s+filtering|kyc\s+remediation|sarlaft|abac|anti[-\s]?bribery|anti[-\s]?corruption|fraud\s+(?:investigation|monitoring))\b`, Compliance, ""},
	{`\bregulatory\s+control\s+analyst\b`, RiskOperational, ""},
	{`\brisk\s+and\s+control\b`, RiskOperational, ""},
	{`\bcompliance\s+(?:analyst|intern|associate|officer)\b`, Compliance, ""},
	{`\baml\s+kyc\s+(?:analyst|intern)\b`, Compliance, ""},
	{`\bfinancial\s+crime\s+(?:analyst|intern)\b`, Compliance, ""},

	// Legal.
	{`\b(corporate|company)\s+secretary\b`, Legal, "corp/company secretary"},
	{`\bdomiciliation\b`, Legal, "domiciliation"},
	{`\bfiscaliste\b`, Legal, ""},
	{`\b(juriste|lawyer|attorney|solicitor|barrister|abogado(?:a)?|legal\s+counsel|\blegal\b|avocat|avocate|paralegal|contract\s+manager|droit|corporate\s+law|fiscal(?:ite|idad)?|privacy|data\s+protection|dpo|rgpd|gdpr|company\s+secretary)\b`, Legal, ""},

	// Audit / finance control.
	{`\bfinance\b.{0,20}\b(intern|internship|off[-\s]?cycle|placement|summer|analyst)\b`, FinanceControl, ""},
	{`\b(audit|auditeur|controle\s+(?:interne|financier|de\s+gestion)|controleur\s+de\s+gestion|account(?:ing|ant)|general\s+ledger|gl\b|closing|cloture|ifrs|us\s+gaap|reporting|fp&a|\bbp&a\b|p&l|controlling|finance\s+business\s+partner|budget(?:ing)?|forecast(?:ing)?|variance\s+analysis|cost\s+controller|\bcapex\b|\bopex\b|consolidation|\bconso\b|group\s+reporting|sap\s+fi/?co|\bfico\b|controller[s]?\b|sox\b|product\s+control|valuation(?:s)?\s+control|independent\s+price\s+verification|ipv)\b`, FinanceControl, ""},
	{`\bfinance\s+(?:intern|analyst|associate)\b`, FinanceControl, ""},
	{`\bfinancial\s+report(?:ing)?\s+officer\b`, FinanceControl, ""},

	// Retail banking / branch (FR, ES, DE, NL, PL wording).
	{`\b(conseiller(?:e)?\s+(?:clientele|banque)|chargee?\s+de\s+clientele|directeur\s+d'agence|conseiller\s+pro|professionnels|retail\s+banking|front\s+office\s+agence|conseiller\s+commercial(?:\s+banque)?|guichet(?:ier)?|chargee?\s+d'accueil|banquier\s+de\s+famille|banquier\s+patrimonial\s+forum|agencia|asesor(?:a)?\s+(?:digital|universal|ventas|servicios|cobranza|comisiones)|ejecutivo\s+de\s+cuentas?|gerente\s+de\s+sucursal|sucursal|cajer[oa]|personal\s+banker|associate\s+banker|teller|branch\s+(?:manager|operations|office|coordinator)|bankhal\s+medewerker|berater\s+privatkunden|daily\s+banking|klantenservice|obslugi\s+klienta|mortgage|baufinanzierung|bankkaufmann|bankkauffrau|contact\s+center|call\s+center|ccss|voice\s+agent|remittances?)\b`, RetailBranch, ""},
	{`\brelationship\s+banker\b`, RetailBranch, ""},
	{`\bfinancial\s+center\b`, RetailBranch, ""},
	{`\bconseiller\s+bancaire\b`, RetailBranch, ""},
	{`\bgestionnaire\s+de\s+clientele\b`, RetailBranch, ""},
	{`\bconseiller\s+d'?accueil\b`, RetailBranch, ""},
	{`\bclientele\s+essent(?:iel|ielle)\b`, RetailBranch, ""},
	{`\bpersonal\s+de\s+cajas\b`, RetailBranch, ""},
	{`\bconseiller(?:\([^)]+\))?\s+(?:d'?accueil|accueil)\b`, RetailBranch, ""},
	{`\bconseiller(?:\([^)]+\))?\s+de\s+clientele\b`, RetailBranch, ""},
	{`\bcharge(?:\([^)]+\))?\s+de\s+clientele\s+particuliers?\b`, RetailBranch, ""},
	{`\bclientele\s+particuliers?\b`, RetailBranch, ""},
	{`\bconseill\w*\s+(?:en\s+)?services?\s+bancaires?\b`, RetailBranch, ""},
	{`\bconseill\w*\s+particulier(?:s)?\b`, RetailBranch, ""},
	{`\bbancassurance\b`, RetailBranch, ""},
	{`\buniversal\s+banker\b`, RetailBranch, ""},
	{`\bpersonal\s+de\s+caja[s]?\b`, RetailBranch, ""},
	{`\bconseiller(?:\s*/\s*conseillere)?\s+accueil\b`, RetailBranch, ""},
	{`\bkundenberater\b`, RetailBranch, ""},
	{`\bkundenberater\b.{0,20}\bprivatkunden\b`, RetailBranch, ""},
	{`\basesoria\s+digital\b`, RetailBranch, ""},
	{`\bjobs?\s+de\s+(?:guichet|cajas?)\b`, RetailBranch, ""},
	{`\bejecutivo/?a\s+hipotecario\b`, RetailBranch, ""},
	{`\bconseill\w*(?:\s*/\s*conseill\w*)?\s+de\s+clientele\b`, RetailBranch, ""},
	{`\bkundenberater\b(?:.{0,20}\bprivatkunden\b)?`, RetailBranch, ""},

	// Corporate banking / coverage. Bare seniority words land here.
	{`\b(relationship\s+(?:manager|management|mgmt)|rm\b(?![a-z])|coverage(?!\s*markets)|corporate\s+banking|cash\s+management|transaction\s+banking|gtb\b|gts\b|global\s+trade\s+solutions?|trade\s+finance|cib\s+coverage|corporate\s+and\s+institutional\s+banking|international\s+subsidiary\s+bank|export\s+finance|project\s+finance|structured\s+export\s+finance|working\s+capital|supply\s+chain\s+(?:finance|solutions)|escrow|bank\s+guarantees?|business\s+banking\s+manager|gps\b|payments?\s+(?:product|sales|manager)|account\s+manager|assistant\s+sales\s+manager)\b`, CorporateBanking, ""},
	{`\bglobal\s+capital\s+markets?\b.{0,40}\b(analyst|intern(?:ship)?|off[-\s]?cycle|industrial\s+placement|summer|graduate)\b`, CorporateBanking, ""},
	{`\bcharge(?:\([^)]+\))?\s+d'?affaires?\b`, CorporateBanking, ""},
	{`\bejecutivo/?a\s+banca\s+empresarial\b`, CorporateBanking, ""},
	{`\bejecutivo\s+clientes?\s+gran\s+empresa\b`, CorporateBanking, ""},
	{`\bejecutivo\s+negocios\b`, CorporateBanking, ""},
	{`\bfinancement\s+(?:pro|entreprises?|pro/ent)\b`, CorporateBanking, ""},
	{`\bmarches?\s+des\s+entreprises\b`, CorporateBanking, ""},
	{`\badvisor\s+professionals?\b`, CorporateBanking, ""},
	{`\b(vice\s+president|assistant\s+vice\s+president|svp|avp|associate\s+director|director)\b`, CorporateBanking, ""},
	{`\b(manager|associate)\b`, CorporateBanking, ""},
	{`\bintern(ship)?\b`, CorporateBanking, ""},
	{`\bstage\b`, CorporateBanking, ""},
	{`\bglobal\s+markets?\b`, MarketsSales, ""},

	// FR/ES/IT coverage wording.
	{`\b(charge(?:e)?\s+d'affaires\s+entreprises|banquier\s+conseil|gestore\s+corporate|banca\s+empresas\s+e\s+instituciones|grandes?\s+entreprises|grands?\s+comptes|march[eé]\s+entreprises)\b`, CorporateBanking, ""},
	{`\b(titrisation|securiti[sz]ation|origination)\b`, CorporateBanking, ""},
	{`\badvisory\s*&\s*financing\s+group\b`, CorporateBanking, ""},

	// Treasury / ALM.
	{`\b(treasury|tresorerie|tesoreria|tesouraria|alm|asset\s+liability\s+management|liquidity\s+risk|nsfr|lcr|ilaap|alco|irrbb|hedg(?:e|ing)|ftp|funds?\s+transfer\s+pricing|balance\s+sheet\s+management|liquidity\s+buffer|contingency\s+funding\s+plan|\bcfp\b|liquidity\s+stress\s+testing|\blst\b|intraday\s+liquidity|repricing\s+gaps?|eve\b|nii\b|liquidity\s+portfolio\s+management|term\s+funding|wholesale\s+funding|obtain\s+and\s+maintain\s+financing)\b`, Treasury, ""},
	{`\bcapital\s*&\s*liquidity\b`, Treasury, ""},

	// Risk.
	{`\bkreditrisikomanager\b`, RiskCredit, ""},
	{`\b(ccar|stress\s+test(?:ing)?)\b`, RiskModel, ""},
	{`\b(market\s+risk|var|stressed\s+var|frtb|irc|xva)\b`, RiskMarket, ""},
	{`\b(credit\s+risk|counterparty\s+risk|pd|lgd|ead|analista\s+riesgo|risques?\s+engagements?|credit\s+analyst|credit\s+approval|watchlist|limit\s+management|covenants?)\b`, RiskCredit, ""},
	{`\b(operational\s+risk|op(?:erational)?\s*risk|non[-\s]?financial\s+risk|permanent\s+control|rcsa|kri|sox\s+controls?|issue\s+management|sox\s+404|scenario\s+analysis|risk\s+control)\b`, RiskOperational, ""},
	{`\b(model\s+risk|model\s+validation|model\s+review|ml\s+validation|backtesting|benchmarking)\b`, RiskModel, ""},
	{`\brisk\s+(?:officer|analyst|manager)\b`, RiskOperational, "risk officer"},
	{`\brisk\b.{0,20}\b(intern|internship|off[-\s]?cycle|placement|summer|graduate)\b`, RiskOperational, "risk intern"},
	{`\brisk\s+management\s+intern\b`, RiskOperational, ""},
	{`\brisk\s+management\s+analyst\b`, RiskOperational, ""},
	{`\bcredit\s*&\s*portfolio\s+management\b`, RiskCredit, ""},
	{`\bcredit\s+portfolio\s+management\b`, RiskCredit, ""},
	{`\bcpm\b.{0,20}\b(credit|portfolio|risk)\b|\b(credit|portfolio|risk)\b.{0,20}\bcpm\b`, RiskCredit, ""},

	// Markets: sales, structuring, trading, research.
	{`\b(commodit(?:y|ies)\s+broker|broker\s+(?:agricultural\s+)?commodit(?:y|ies))\b`, MarketsSales, ""},
	{`(?:(?:markets?|trading|derivatives?|fx|forex|rates?|equities?|equity|credit|fixed\s+income|commodit(?:y|ies)|structured\s+products?)(?:\s|[,/-])+(?:\w+\s+){0,2}?(?:sales|distribution)\b|\bsales(?:\s|[,/-])+(?:trader|trading|markets?|derivatives?|fx|rates?|equities?|credit|structured\s+products?)\b|vendeur\s+(?:salle|marches?)|sales[-\s]?trader|institutional\s+sales|client\s+coverage|coverage\s+sales|distribution\s+sales)`, MarketsSales, ""},
	{`\b(?:(?:(?:assistants?\s+)?vendeurs?|sales|distribution)\b.{0,40}?\b(?:produits?\s+structures?|structured\s+products?)|(?:produits?\s+structures?|structured\s+products?)\b.{0,40}?\b(?:(?:assistants?\s+)?vendeurs?|sales|distribution))\b`, MarketsSales, ""},
	{`\b(structurer|structuring|produits?\s+structures?|structured\s+products?|term\s*sheet|payoff|exotic(?:s)?\s+structur(?:e|ing)|autocall(?:able)?|barriers?|quanto|binary\s+options?|cliquet|basket)\b`, MarketsStructuring, ""},
	{`\b(trader?s?|trading|market\s+maker|prop(?:rietary)?\s+trading|delta\s+one|flow\s+trading|options?|futures?|swaps?|swaptions?|exotics?|repo|money\s+markets?|g10|em(?:erging)?\s+markets?|rfq|market\s+making|vwap|twap|algo(?:rithmic)?\s+trading|hedg(?:e|ing)|delta\s+hedg(?:e|ing)|flow\s+credit|cash\s+equities|xva|otc|listed\s+derivatives?)\b`, MarketsTrading, ""},
	{`\b(research\s+(?:analyst|associate|management)|equity\s+research|credit\s+research|macro\s+(?:research|strategy|strategist)|strategy\s+(?:analyst|associate)|sell[-\s]?side\s+research|buy[-\s]?side\s+research|(?:global|investment)\s+research|earnings\s+model|dcf|thematic\s+research)\b`, MarketsResearch, ""},
	{`\bbond\s+analytics\b`, MarketsResearch, ""},
	{`\bstructured\s+finance\s+(?:intern|analyst)\b`, MarketsStructuring, ""},
	{`\bglobal\s+markets\s+(?:intern|analyst|summer)\b`, MarketsSales, ""},

	// Buy side and wealth.
	{`\b(venture\s+capital|capital\s+risque|private\s+equity|pe\b|gp\/lp|fund\s+of\s+funds)\b`, AssetManagement, ""},
	{`\b(asset\s+management|buy[-\s]?side|portfolio\s+manager|fund\s+manager|gerant(?:e)?|gestion\s+d?actifs?|opcvm|ucits|aifm|fund\s+selector|multi-?manager|asset\s+allocation|fund\s+selection|manager\s+research|mandates?|managed\s+accounts?|sma\b|rfp\b|due\s+diligence\s+(?:manager|fund)|kiid|priips|aladdin)\b`, AssetManagement, ""},
	{`\binvestment\s+management\b`, AssetManagement, "investment management"},
	{`\b(private\s+banker|banquier\s+prive(?:s|es)?|wealth\s+management|private\s+wealth|family\s+office|uhnw|hnw|private\s+banking|investment\s+advisor|financial\s+advis(?:or|er)|client\s+advis(?:or|er)y?|wealth\s+planner|estate\s+planning|succession|fiduciary|trust\s+(?:officer|services?)|discretionary\s+mandate|mandate\s+discretionnaire|lombard|credit\s+advisory|gestion\s+de\s+patrimoine|gestionnaire\s+prive?|banquero(?:a)?\s+(?:patrimonial|privado|personal)|premier\s+(?:services|bank(?:ing)?)|wpb\b|rbwm\b|wealth\s+lending)\b`, WealthManagement, ""},
	{`\bclient\s+advis(?:or|er)\b`, WealthManagement, "client advisor"},
	{`\badvis(?:or|er)\s+client\b`, WealthManagement, "advisor client"},
	{`\bfinancial\s+solutions?\s+advisor\b`, WealthManagement, ""},
	{`\bbanquier\s+patrimonial\b`, WealthManagement, ""},
	{`\bconseill\w*\s+patrimonial\b`, WealthManagement, ""},
	{`\bplanificateur(?:\([^)]+\))?\s+financier(?:\([^)]+\))?(?:\s+relationnel(?:le)?)?\b`, WealthManagement, ""},
	{`\bclientele\s+premium\b`, WealthManagement, ""},
	{`\bclient\s+service\s+(?:associate|executive)\b`, WealthManagement, ""},
	{`\bkundenberater\b.{0,20}\bwertpapier\b`, WealthManagement, ""},
	{`\bbanque\s+privee\b`, WealthManagement, ""},
	{`\bgestion\s+privee\b`, WealthManagement, ""},
	{`\bbanquero/?a\s+patrimonial\b`, WealthManagement, ""},
	{`\bbanque\s+privee\b|\bgestion\s+privee\b`, WealthManagement, ""},
	{`\bbanquier\s+patrimonial\b|\bconseill\w*\s+patrimonial\b`, WealthManagement, ""},

	// Real estate.
	{`\b(real\s+estate|immobilier|immobilien|property\s+(?:management|investing)|reits?|asset\s+manager\s+(?:logistics|bureaux|offices?|retail|residential|industrial|activites?)|acquisitions?\s+immobilieres?|promotion\s+immobiliere|lease\s+management|valuation|appraisal)\b(?!\s*(bank|banking|coverage))`, RealEstate, ""},
	{`\bimmobilienmanagement\b`, RealEstate, ""},

	// Fallbacks.
	{`\b(investment\s+banking|global\s+banking|ib\s+(?:analyst|off[-\s]?cycle|internship|summer|graduate)|ibd\b|corporate\s+finance|m&a|mergers?\s+&\s+acquisitions?)\b`, CorporateBanking, ""},
	{`\brisk\s+management\b`, RiskOperational, ""},
	{`\b(fixed\s+income|equities|equity|fx|forex|rates|credit|commodit(?:y|ies))\b(?:(?!research|structur|trading)[\s\w]{0,30})\b(analyst|intern(?:ship)?|off[-\s]?cycle|industrial\s+placement|summer)\b`, MarketsSales, ""},
}

// DefaultRules returns fresh copies of the built-in tables, in precedence
// order: manual overrides, high-priority rules (guard deflections first), base
// cascade.
func DefaultRules() (overrides, priority, base []Rule) {
	priority = append(guardDeflections(), priorityRules...)
	return slices.Clone(manualOverrides), priority, slices.Clone(baseRules)
}
