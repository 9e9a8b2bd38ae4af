package planner

// RedirectionPlan is the outcome of planning one stage reslot.
type RedirectionPlan struct {
	// BaseStage is the stage assets are shared from
	BaseStage string

	// CurrentStage is the stage being created
	CurrentStage string

	// Redirects maps base-game paths to current-stage paths, in insertion order
	Redirects []Redirect

	// NewFiles lists files the base game does not have
	NewFiles []string

	// NewDirs lists directories the base game does not have
	NewDirs []string

	// NewDirFiles groups new files under the directory they are registered in
	NewDirFiles []DirFiles

	redirected map[string]struct{}
	newFiles   map[string]struct{}
	newDirs    map[string]struct{}
	dirIndex   map[string]int
}

// Redirect shares a base-game file with the current stage.
type Redirect struct {
	// From is the base-game path
	From string

	// To is the current-stage path that resolves to From
	To string
}

// DirFiles lists the new files registered under one directory.
type DirFiles struct {
	Dir   string
	Files []string
}

// NewRedirectionPlan creates a new empty RedirectionPlan.
func NewRedirectionPlan(base, current string) *RedirectionPlan {
	return &RedirectionPlan{
		BaseStage:    base,
		CurrentStage: current,
		Redirects:    []Redirect{},
		NewFiles:     []string{},
		NewDirs:      []string{},
		NewDirFiles:  []DirFiles{},
		redirected:   make(map[string]struct{}),
		newFiles:     make(map[string]struct{}),
		newDirs:      make(map[string]struct{}),
		dirIndex:     make(map[string]int),
	}
}

// AddRedirect records from -> to. The first redirect for a source wins.
func (p *RedirectionPlan) AddRedirect(from, to string) bool {
	if _, ok := p.redirected[from]; ok {
		return false
	}
	p.redirected[from] = struct{}{}
	p.Redirects = append(p.Redirects, Redirect{From: from, To: to})
	return true
}

// AddNewFile queues a new file unless it is already queued.
func (p *RedirectionPlan) AddNewFile(path string) bool {
	if _, ok := p.newFiles[path]; ok {
		return false
	}
	p.newFiles[path] = struct{}{}
	p.NewFiles = append(p.NewFiles, path)
	return true
}

// AddNewDir registers a new directory unless it is already registered.
func (p *RedirectionPlan) AddNewDir(dir string) bool {
	if _, ok := p.newDirs[dir]; ok {
		return false
	}
	p.newDirs[dir] = struct{}{}
	p.NewDirs = append(p.NewDirs, dir)
	return true
}

// HasNewDir reports whether dir is already registered.
func (p *RedirectionPlan) HasNewDir(dir string) bool {
	_, ok := p.newDirs[dir]
	return ok
}

// AddDirFile lists file under dir, creating the group on first use.
func (p *RedirectionPlan) AddDirFile(dir, file string) {
	i, ok := p.dirIndex[dir]
	if !ok {
		i = len(p.NewDirFiles)
		p.dirIndex[dir] = i
		p.NewDirFiles = append(p.NewDirFiles, DirFiles{Dir: dir, Files: []string{}})
	}
	for _, f := range p.NewDirFiles[i].Files {
		if f == file {
			return
		}
	}
	p.NewDirFiles[i].Files = append(p.NewDirFiles[i].Files, file)
}
