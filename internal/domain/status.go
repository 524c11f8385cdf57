package domain

// Closed enumerations for every status/role/level field. New values must be
// added to the matching IsValid switch, which is the single source of truth
// for what the store may contain.

type IdeaStatus string

const (
	IdeaStatusNew          IdeaStatus = "NEW"
	IdeaStatusScored       IdeaStatus = "SCORED"
	IdeaStatusSelected     IdeaStatus = "SELECTED"
	IdeaStatusInHypothesis IdeaStatus = "IN_HYPOTHESIS"
	IdeaStatusCompleted    IdeaStatus = "COMPLETED"
	IdeaStatusArchived     IdeaStatus = "ARCHIVED"
)

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusNew, IdeaStatusScored, IdeaStatusSelected,
		IdeaStatusInHypothesis, IdeaStatusCompleted, IdeaStatusArchived:
		return true
	default:
		return false
	}
}

type HypothesisStatus string

const (
	HypothesisStatusDraft            HypothesisStatus = "DRAFT"
	HypothesisStatusScored           HypothesisStatus = "SCORED"
	HypothesisStatusResearch         HypothesisStatus = "RESEARCH"
	HypothesisStatusExperimentDesign HypothesisStatus = "EXPERIMENT_DESIGN"
	HypothesisStatusReadyForTesting  HypothesisStatus = "READY_FOR_TESTING"
	HypothesisStatusInExperiment     HypothesisStatus = "IN_EXPERIMENT"
	HypothesisStatusValidated        HypothesisStatus = "VALIDATED"
	HypothesisStatusInvalidated      HypothesisStatus = "INVALIDATED"
	HypothesisStatusCompleted        HypothesisStatus = "COMPLETED"
	HypothesisStatusArchived         HypothesisStatus = "ARCHIVED"
)

func (s HypothesisStatus) IsValid() bool {
	switch s {
	case HypothesisStatusDraft, HypothesisStatusScored, HypothesisStatusResearch,
		HypothesisStatusExperimentDesign, HypothesisStatusReadyForTesting,
		HypothesisStatusInExperiment, HypothesisStatusValidated,
		HypothesisStatusInvalidated, HypothesisStatusCompleted,
		HypothesisStatusArchived:
		return true
	default:
		return false
	}
}

type HypothesisLevel string

const (
	HypothesisLevel1 HypothesisLevel = "LEVEL_1"
	HypothesisLevel2 HypothesisLevel = "LEVEL_2"
)

func (l HypothesisLevel) IsValid() bool {
	switch l {
	case HypothesisLevel1, HypothesisLevel2:
		return true
	default:
		return false
	}
}

type Conclusion string

const (
	ConclusionValidated     Conclusion = "VALIDATED"
	ConclusionInvalidated   Conclusion = "INVALIDATED"
	ConclusionInconclusive  Conclusion = "INCONCLUSIVE"
	ConclusionNeedsMoreData Conclusion = "NEEDS_MORE_DATA"
)

func (c Conclusion) IsValid() bool {
	switch c {
	case ConclusionValidated, ConclusionInvalidated,
		ConclusionInconclusive, ConclusionNeedsMoreData:
		return true
	default:
		return false
	}
}

type ExperimentStatus string

const (
	ExperimentStatusPlanning  ExperimentStatus = "PLANNING"
	ExperimentStatusRunning   ExperimentStatus = "RUNNING"
	ExperimentStatusPaused    ExperimentStatus = "PAUSED"
	ExperimentStatusCompleted ExperimentStatus = "COMPLETED"
	ExperimentStatusCancelled ExperimentStatus = "CANCELLED"
)

func (s ExperimentStatus) IsValid() bool {
	switch s {
	case ExperimentStatusPlanning, ExperimentStatusRunning, ExperimentStatusPaused,
		ExperimentStatusCompleted, ExperimentStatusCancelled:
		return true
	default:
		return false
	}
}

type MVPStatus string

const (
	MVPStatusPlanned       MVPStatus = "PLANNED"
	MVPStatusInDevelopment MVPStatus = "IN_DEVELOPMENT"
	MVPStatusLaunched      MVPStatus = "LAUNCHED"
	MVPStatusArchived      MVPStatus = "ARCHIVED"
)

func (s MVPStatus) IsValid() bool {
	switch s {
	case MVPStatusPlanned, MVPStatusInDevelopment, MVPStatusLaunched, MVPStatusArchived:
		return true
	default:
		return false
	}
}

type UserRole string

const (
	UserRoleAdmin       UserRole = "ADMIN"
	UserRoleContributor UserRole = "CONTRIBUTOR"
	UserRoleViewer      UserRole = "VIEWER"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleContributor, UserRoleViewer:
		return true
	default:
		return false
	}
}
