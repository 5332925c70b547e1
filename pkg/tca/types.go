package tca

// RawPayload is returned for successful responses whose body is not valid
// JSON. Some endpoints legitimately answer with plain text, so a parse
// failure on a 2xx response is downgraded to data instead of surfacing as an
// error.
type RawPayload struct {
	Data   string `json:"data"   yaml:"data"`
	Status int    `json:"status" yaml:"status"`
}

// Meta carries pagination information for list responses.
type Meta struct {
	CurrentPage int   `json:"currentPage" yaml:"currentPage"`
	LastPage    int   `json:"lastPage"    yaml:"lastPage"`
	PerPage     int   `json:"perPage"     yaml:"perPage"`
	Total       int64 `json:"total"       yaml:"total"`
}

// Company represents a company profile.
type Company struct {
	ID            int64    `json:"id,omitempty"            yaml:"id,omitempty"`
	Domain        string   `json:"domain"                  yaml:"domain"`
	Name          string   `json:"name,omitempty"          yaml:"name,omitempty"`
	Description   string   `json:"description,omitempty"   yaml:"description,omitempty"`
	Industry      string   `json:"industryMain,omitempty"  yaml:"industryMain,omitempty"`
	Industries    []string `json:"industries,omitempty"    yaml:"industries,omitempty"`
	Technologies  []string `json:"technologies,omitempty"  yaml:"technologies,omitempty"`
	TotalEmployee int64    `json:"totalEmployees,omitempty" yaml:"totalEmployees,omitempty"`
	Country       string   `json:"countryCode,omitempty"   yaml:"countryCode,omitempty"`
	City          string   `json:"city,omitempty"          yaml:"city,omitempty"`
	Revenue       string   `json:"revenue,omitempty"       yaml:"revenue,omitempty"`
	SocialNetwork map[string]string `json:"socialNetworks,omitempty" yaml:"socialNetworks,omitempty"`
}

// CompanySearchResult represents a page of company search results.
type CompanySearchResult struct {
	Companies []Company `json:"companies" yaml:"companies"`
	Meta      Meta      `json:"meta"      yaml:"meta"`
}

// CompanyCount represents the result of a count query.
type CompanyCount struct {
	Count int64 `json:"count" yaml:"count"`
}

// EmailPattern describes a company's email address structure.
type EmailPattern struct {
	Pattern string  `json:"pattern" yaml:"pattern"`
	Score   float64 `json:"score"   yaml:"score"`
}

// EmailPatternsResult represents the email patterns of a company.
type EmailPatternsResult struct {
	Patterns []EmailPattern `json:"patterns" yaml:"patterns"`
	Meta     Meta           `json:"meta"     yaml:"meta"`
}

// Answer represents the response to an askCompany prompt.
type Answer struct {
	Answer string                   `json:"answer,omitempty" yaml:"answer,omitempty"`
	Meta   map[string]interface{}   `json:"meta,omitempty"   yaml:"meta,omitempty"`
	Source []map[string]interface{} `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// List represents a saved company list.
type List struct {
	ID             int64  `json:"id"                       yaml:"id"`
	Name           string `json:"name"                     yaml:"name"`
	Type           string `json:"type,omitempty"           yaml:"type,omitempty"`
	CompaniesCount int64  `json:"companiesCount,omitempty" yaml:"companiesCount,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"      yaml:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"      yaml:"updatedAt,omitempty"`
}

// ListsResult represents a page of lists.
type ListsResult struct {
	Lists []List `json:"lists" yaml:"lists"`
	Meta  Meta   `json:"meta"  yaml:"meta"`
}

// Action represents an asynchronous enrichment action.
type Action struct {
	ID         int64                  `json:"id"                   yaml:"id"`
	Type       string                 `json:"type,omitempty"       yaml:"type,omitempty"`
	Status     string                 `json:"status,omitempty"     yaml:"status,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	CreatedAt  string                 `json:"createdAt,omitempty"  yaml:"createdAt,omitempty"`
}

// ActionsResult represents a page of actions.
type ActionsResult struct {
	Actions []Action `json:"actions" yaml:"actions"`
	Meta    Meta     `json:"meta"    yaml:"meta"`
}

// Industry represents an industry aggregate.
type Industry struct {
	Industry       string `json:"industry"                 yaml:"industry"`
	CompaniesCount int64  `json:"companiesCount,omitempty" yaml:"companiesCount,omitempty"`
}

// IndustriesResult represents a page of industries.
type IndustriesResult struct {
	Industries []Industry `json:"industries" yaml:"industries"`
	Meta       Meta       `json:"meta"       yaml:"meta"`
}

// Technology represents a technology aggregate.
type Technology struct {
	Technology     string `json:"technology"               yaml:"technology"`
	CompaniesCount int64  `json:"companiesCount,omitempty" yaml:"companiesCount,omitempty"`
}

// TechnologiesResult represents a page of technologies.
type TechnologiesResult struct {
	Technologies []Technology `json:"technologies" yaml:"technologies"`
	Meta         Meta         `json:"meta"         yaml:"meta"`
}

// City represents a city location aggregate.
type City struct {
	Name        string `json:"name"                  yaml:"name"`
	Code        string `json:"code,omitempty"        yaml:"code,omitempty"`
	CountryCode string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
}

// CitiesResult represents a page of cities.
type CitiesResult struct {
	Cities []City `json:"cities" yaml:"cities"`
	Meta   Meta   `json:"meta"   yaml:"meta"`
}

// Country represents a country location aggregate.
type Country struct {
	Name string `json:"name"           yaml:"name"`
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
}

// CountriesResult represents a page of countries.
type CountriesResult struct {
	Countries []Country `json:"countries" yaml:"countries"`
	Meta      Meta      `json:"meta"      yaml:"meta"`
}

// JobTitle represents an enriched job title.
type JobTitle struct {
	Name       string `json:"name"                 yaml:"name"`
	Seniority  string `json:"seniority,omitempty"  yaml:"seniority,omitempty"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
}

// Team represents the caller's team account.
type Team struct {
	ID      int64  `json:"id"               yaml:"id"`
	Name    string `json:"name,omitempty"   yaml:"name,omitempty"`
	Credits int64  `json:"credits,omitempty" yaml:"credits,omitempty"`
}

// HealthStatus represents the API health endpoint response.
type HealthStatus struct {
	Status string `json:"status" yaml:"status"`
}
