package skills

import "strings"

// Category is one of the fixed skill buckets used for resume grouping.
type Category string

const (
    CategoryProgramming  Category = "Programming Languages"
    CategoryCloudDevOps  Category = "Cloud & DevOps"
    CategoryDevTools     Category = "Development Tools"
    CategoryDatabases    Category = "Databases"
    CategoryFrameworks   Category = "Frameworks & Libraries"
    CategoryAtlassian    Category = "Atlassian Ecosystem"
    CategoryITSM         Category = "ITSM & Methodologies"
    CategoryOS           Category = "Operating Systems"
    CategoryNetSec       Category = "Networking & Security"
    CategoryMonitoring   Category = "Monitoring & Analytics"
    CategorySoftSkills   Category = "Soft Skills"
    CategoryOther        Category = "Other"
)

// CategoryOrder lists every category in resume display order. "Other"
// always renders last.
var CategoryOrder = []Category{
    CategoryProgramming,
    CategoryCloudDevOps,
    CategoryDevTools,
    CategoryDatabases,
    CategoryFrameworks,
    CategoryAtlassian,
    CategoryITSM,
    CategoryOS,
    CategoryNetSec,
    CategoryMonitoring,
    CategorySoftSkills,
    CategoryOther,
}

// categoryKeywords is declarative data, not control flow: the declared
// order is the match priority, so the first category containing a
// keyword wins.
var categoryKeywords = []struct {
    Category Category
    Keywords []string
}{
    {CategoryProgramming, []string{
        "Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust", "TypeScript",
        "PHP", "Ruby", "Scala", "Kotlin", "Swift", "Objective-C", "R", "MATLAB",
        "SQL", "NoSQL", "GraphQL", "HTML", "CSS", "SCSS", "Sass",
    }},
    {CategoryCloudDevOps, []string{
        "AWS", "Azure", "Google Cloud", "GCP", "Docker", "Kubernetes", "Jenkins",
        "GitLab CI", "GitHub Actions", "Terraform", "Ansible", "Puppet", "Chef",
        "CircleCI", "Travis CI", "Helm", "Istio", "Prometheus", "Grafana",
        "EKS", "AKS", "GKE", "CloudFormation", "CDK",
    }},
    {CategoryDevTools, []string{
        "Git", "GitHub", "GitLab", "Bitbucket", "SVN", "VS Code", "IntelliJ",
        "Eclipse", "Vim", "Emacs", "Postman", "Insomnia", "Swagger", "OpenAPI",
    }},
    {CategoryDatabases, []string{
        "MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra",
        "DynamoDB", "Oracle", "SQL Server", "SQLite", "Neo4j", "InfluxDB",
        "MariaDB", "CouchDB", "Amazon RDS", "Azure SQL",
    }},
    {CategoryFrameworks, []string{
        "React", "Vue.js", "Angular", "Node.js", "Express", "Django", "Flask",
        "Spring", "Spring Boot", "Laravel", "Symfony", ".NET", "ASP.NET",
        "jQuery", "Bootstrap", "Tailwind CSS", "Material UI", "Ant Design",
    }},
    {CategoryAtlassian, []string{
        "Atlassian", "Jira", "Confluence", "Bitbucket", "Bamboo", "Crowd",
        "Jira Service Management", "Jira Align", "Trello", "Statuspage",
        "Opsgenie", "Compass", "Atlassian Cloud", "Atlassian Server", "Atlassian DC",
    }},
    {CategoryITSM, []string{
        "ITIL", "ITIL v4", "Agile", "Scrum", "Kanban", "DevOps", "CI/CD",
        "Test-Driven Development", "Behavior-Driven Development", "Microservices",
        "Service Management", "Incident Management", "Change Management",
        "Problem Management", "Release Management",
    }},
    {CategoryOS, []string{
        "Linux", "Ubuntu", "CentOS", "RedHat", "SUSE", "Debian", "Windows Server",
        "macOS", "Unix", "AIX", "Solaris", "Windows", "Windows 10", "Windows 11",
    }},
    {CategoryNetSec, []string{
        "TCP/IP", "DNS", "DHCP", "VPN", "Firewall", "Load Balancing", "SSL/TLS",
        "OAuth", "SAML", "Active Directory", "LDAP", "Cybersecurity", "Penetration Testing",
        "Vulnerability Assessment", "Network Security", "Information Security",
    }},
    {CategoryMonitoring, []string{
        "Prometheus", "Grafana", "New Relic", "Datadog", "Splunk", "ELK Stack",
        "Elasticsearch", "Logstash", "Kibana", "Nagios", "Zabbix", "SolarWinds",
        "Application Performance Monitoring", "Infrastructure Monitoring",
    }},
    {CategorySoftSkills, []string{
        "Leadership", "Team Management", "Project Management", "Technical Writing",
        "Problem Solving", "Communication", "Mentoring", "Training", "Consulting",
        "Customer Service", "Stakeholder Management", "Technical Consultation",
    }},
}

// Categorize maps a skill name to its category. Pass one is exact
// case-insensitive equality; pass two is a substring check skipped for
// names of one or two characters so that "R" never matches inside
// "Docker". First category in declared order wins. Unmatched names get
// CategoryOther.
func Categorize(name string) Category {
    lower := strings.ToLower(strings.TrimSpace(name))
    if lower == "" {
        return CategoryOther
    }

    for _, group := range categoryKeywords {
        for _, kw := range group.Keywords {
            if strings.ToLower(kw) == lower {
                return group.Category
            }
        }
    }

    if len(lower) > 2 {
        for _, group := range categoryKeywords {
            for _, kw := range group.Keywords {
                kwLower := strings.ToLower(kw)
                if strings.Contains(lower, kwLower) ||
                    (len(kwLower) > 2 && strings.Contains(kwLower, lower)) {
                    return group.Category
                }
            }
        }
    }

    return CategoryOther
}
