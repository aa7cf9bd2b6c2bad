package github

// User is a github account.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// Repo is a github repository.
type Repo struct {
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Private    bool   `json:"private"`
	SSHURL     string `json:"ssh_url"`
	CloneURL   string `json:"clone_url"`
	GitURL     string `json:"git_url"`
	HTMLURL    string `json:"html_url"`
	OpenIssues int    `json:"open_issues_count"`
	Owner      User   `json:"owner"`
}

// Ref is one side of a pull request (head or base).
type Ref struct {
	Ref  string `json:"ref"`
	SHA  string `json:"sha"`
	Repo *Repo  `json:"repo"`
}

// PullRequest is a github pull request.
type PullRequest struct {
	Number  int    `json:"number"`
	State   string `json:"state"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	HTMLURL string `json:"html_url"`
	User    User   `json:"user"`
	Head    Ref    `json:"head"`
	Base    Ref    `json:"base"`
}

// NewPull describes a pull request to create.
type NewPull struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Head  string `json:"head"` // "user:branch" for cross-repo requests
	Base  string `json:"base"`
}
