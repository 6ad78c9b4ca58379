package classify

// Taxonomy categories produced by the default rule set. The taxonomy is open:
// custom rule sets may return any string.
const (
	// Other is returned when no rule matches.
	Other = "Other"

	AdminAssistant         = "Administrative / Executive Assistant"
	IBMergersAcquisitions  = "IB — M&A Advisory"
	IBEquityCapitalMarkets = "IB — Equity Capital Markets (ECM)"
	IBDebtCapitalMarkets   = "IB — Debt Capital Markets (DCM)"
	IBLeveragedFinance     = "IB — Leveraged Finance"
	IBSyndicate            = "IB — Syndicate"
	IBStructuredFinance    = "IB — Structured Finance / Securitization"
	IBProjectFinance       = "IB — Project & Infrastructure Finance"
	IBRestructuring        = "IB — Restructuring / Special Situations"
	TxBCashManagement      = "Transaction Banking — Cash Management / Payments"
	TxBTradeFinance        = "Transaction Banking — Trade Finance"
	TxBWorkingCapital      = "Transaction Banking — Working Capital & SCF"
	TxBExportFinance       = "Transaction Banking — Export Finance"
	OpsMarketsSupport      = "Operations — Markets Support (Trade Support / Booking / Prime / Clearing)"
	PrivateEquity          = "Private Equity"
	VentureCapital         = "Venture Capital"
	HedgeFunds             = "Hedge Funds / Alternatives"
	WealthLending          = "Wealth — Lending & Credit Advisory"
	WealthTrust            = "Wealth — Trust / Fiduciary / Estate Planning"
	WealthAdvisory         = "Wealth — Investment Advisory"
	ITSoftware             = "IT — Software Engineering"
	ITSecurity             = "IT — Cybersecurity / SecOps"
	ITPlatform             = "IT — Platform / Cloud / SRE / DevOps"
	ITEnterpriseApps       = "IT — Enterprise Apps (SAP / Salesforce / ServiceNow)"
	ITSupport              = "IT — Application / Production Support & Helpdesk"
	ITMarketsTech          = "IT — Markets Tech (eTrading / Market Data)"
	DataScience            = "Data — Data Science / ML"
	DataEngineering        = "Data — Data Engineering / Platform / MLOps"
	DataAnalytics          = "Data — Analytics / BI"
	QuantStrats            = "Quant — Research / Strats"
	DataQuant              = "Data / Quant"
	ProductManagement      = "Product Management"
	BusinessAnalysis       = "Business Analysis"
	ProjectManagement      = "Project / Program Management / PMO"
	AgileDelivery          = "Agile / Scrum / Delivery"
	CorporateStrategy      = "Corporate Strategy"
	TransformationOffice   = "Transformation Office / Change"
	ManagementConsulting   = "Management Consulting"
	ProductControl         = "Product Control / IPV"
	Accounting             = "Accounting / GL / Consolidation"
	FinancialReporting     = "Financial Reporting"
	FPandA                 = "FP&A / Budgeting / Planning"
	InternalAudit          = "Internal Audit / SOX"
	RetailBranch           = "Retail Banking / Branch"
	RetailMortgage         = "Retail Banking — Mortgage / Housing Loans"
	RetailSmallBusiness    = "Retail Banking — Small Business / Pro Advisors"
	LegalCompanySecretary  = "Legal — Company Secretary / Domiciliation"
	LegalPrivacy           = "Legal — Privacy / Data Protection (DPO)"
	LegalTax               = "Legal — Tax / Fiscal"
	LegalContracts         = "Legal — Contracts / Procurement"
	LegalCorporate         = "Legal — Corporate / Commercial"
	MarketingComms         = "Design / Marketing / Comms"
	OpsMiddleOffice        = "Operations — Middle Office"
	MarketsSales           = "Markets — Sales"
	ITEngineering          = "IT / Engineering"
	FinanceControl         = "Audit / Finance Control / Accounting / FP&A"
	OpsBackOffice          = "Operations — Back Office / Settlement"
	WealthManagement       = "Wealth Management / Private Banking"
	CorporateBanking       = "Corporate Banking / Coverage"
	RiskOperational        = "Risk — Operational"
	Compliance             = "Compliance / Financial Crime (AML/KYC)"
	AssetManagement        = "Asset Management / Buy Side"
	ProductProject         = "Product / Project / PMO / Business Analysis"
	StrategyConsulting     = "Strategy / Consulting / Transformation"
	HRPeople               = "HR / People"
	OpsFundAdmin           = "Operations — Fund Admin / TA"
	Legal                  = "Legal / Juridique"
	Treasury               = "Treasury / ALM / Liquidity"
	RiskCredit             = "Risk — Credit"
	RiskModel              = "Risk — Model Risk & Validation"
	RiskMarket             = "Risk — Market"
	MarketsStructuring     = "Markets — Structuring"
	MarketsTrading         = "Markets — Trading"
	MarketsResearch        = "Markets — Research & Strategy"
	RealEstate             = "Real Estate / Investing"
)
