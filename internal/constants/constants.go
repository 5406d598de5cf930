package constants

// Template condition tokens
const (
	TokenSite       = "$site"
	TokenSwitchType = "$switch_type"
)

// Switch type classifications
const (
	SwitchTypeAccess = "access"
	SwitchTypeRouter = "router"
)

// Block substitution markers
const (
	MarkerVlanPriority = "!!!vlan_priority"
	MarkerInterfaces   = "!!!Interfaces"
	MarkerRouterConfig = "!!!router_config"
	MarkerRPAddress    = "!!!rp-address"
	MarkerIPRoute      = "!!!ip_route"
	MarkerLogging      = "!!!logging"
)

// Template file names
const (
	SwitchMasterTemplate     = "Switch_template.j2"
	EdgeBaseTemplate         = "Edge_Base_Template.j2"
	IntermediateBaseTemplate = "Intermediate_Base_Template.j2"
	BorderAdjacencyTemplate  = "Border_Node_Adjacency_Template.j2"
)

// Project directory layout
const (
	DirConfigurations = "Configurations"
	DirOld            = "Old"
	DirNew            = "New"
	DirBase           = "Base"
	DirDocumentation  = "Documentation"
	DirTemplates      = "Templates"
	DirNewTemplates   = "New_Templates"
)

// Output naming
const (
	DateLayout      = "2006_01_02"
	ConfigFileExt   = ".cfg"
	TemplateFileExt = ".j2"
)

// Base config node roles
const (
	RoleEdge         = "edge"
	RoleIntermediate = "intermediate"
)

// Banner width for adjacency and documentation files
const BannerWidth = 79

// Topology CSV columns
const (
	ColEdgeHostname    = "edge_hostname"
	ColInHostname      = "in_hostname"
	ColBN1Hostname     = "bn1_hostname"
	ColBN2Hostname     = "bn2_hostname"
	ColEdgeDescription = "edge_description"
	ColInDescription   = "in_description"
	ColBN1Description  = "bn1_description"
	ColBN2Description  = "bn2_description"
)

// Default site prefix table (hostname prefix -> site name)
var DefaultSitePrefixes = map[string]string{
	"S1": "site_1",
	"S2": "site_2",
	"S3": "Site_3",
}

// Default access layer role prefixes
var DefaultAccessRolePrefixes = []string{
	"AS",
	"SE",
	"EN",
}
