package model

// Column names of the retained survey schema.
const (
	ColAge                     = "Age"
	ColGender                  = "Gender"
	ColCountry                 = "Country"
	ColSelfEmployed            = "self_employed"
	ColFamilyHistory           = "family_history"
	ColTreatment               = "treatment"
	ColWorkInterfere           = "work_interfere"
	ColNoEmployees             = "no_employees"
	ColRemoteWork              = "remote_work"
	ColTechCompany             = "tech_company"
	ColBenefits                = "benefits"
	ColCareOptions             = "care_options"
	ColWellnessProgram         = "wellness_program"
	ColSeekHelp                = "seek_help"
	ColAnonymity               = "anonymity"
	ColLeave                   = "leave"
	ColMentalHealthConsequence = "mental_health_consequence"
	ColPhysHealthConsequence   = "phys_health_consequence"
	ColCoworkers               = "coworkers"
	ColSupervisor              = "supervisor"
	ColMentalHealthInterview   = "mental_health_interview"
	ColPhysHealthInterview     = "phys_health_interview"
	ColMentalVsPhysical        = "mental_vs_physical"
	ColObsConsequence          = "obs_consequence"
)

// RequiredColumns lists the 24 retained columns in output order.
var RequiredColumns = []string{
	ColAge, ColGender, ColCountry, ColSelfEmployed, ColFamilyHistory, ColTreatment,
	ColWorkInterfere, ColNoEmployees, ColRemoteWork, ColTechCompany,
	ColBenefits, ColCareOptions, ColWellnessProgram, ColSeekHelp, ColAnonymity,
	ColLeave, ColMentalHealthConsequence, ColPhysHealthConsequence,
	ColCoworkers, ColSupervisor, ColMentalHealthInterview, ColPhysHealthInterview,
	ColMentalVsPhysical, ColObsConsequence,
}

// YesNoColumns are standardized to Yes/No and finally coerced to nullable 1/0.
var YesNoColumns = []string{
	ColSelfEmployed, ColFamilyHistory, ColTreatment, ColRemoteWork, ColTechCompany,
	ColBenefits, ColCareOptions, ColWellnessProgram, ColSeekHelp, ColAnonymity,
	ColMentalHealthConsequence, ColPhysHealthConsequence, ColCoworkers, ColSupervisor,
	ColMentalHealthInterview, ColPhysHealthInterview, ColMentalVsPhysical, ColObsConsequence,
}

// CriticalColumns get placeholder substitution after their dedicated normalizers.
var CriticalColumns = []string{ColGender, ColCountry, ColNoEmployees}

// CategoricalColumns are the general categorical columns: the yes/no fields
// plus work_interfere and leave.
var CategoricalColumns = []string{
	ColSelfEmployed, ColFamilyHistory, ColTreatment, ColWorkInterfere, ColRemoteWork, ColTechCompany,
	ColBenefits, ColCareOptions, ColWellnessProgram, ColSeekHelp, ColAnonymity, ColLeave,
	ColMentalHealthConsequence, ColPhysHealthConsequence, ColCoworkers, ColSupervisor,
	ColMentalHealthInterview, ColPhysHealthInterview, ColMentalVsPhysical, ColObsConsequence,
}
