package model

import "strconv"

// Response is the cleaned, typed representation of one survey response.
// Nullable integers are *int64; parquet tags define the export schema.
type Response struct {
	Age           *int64 `parquet:"Age,optional"`
	Gender        string `parquet:"Gender"`
	Country       string `parquet:"Country"`
	SelfEmployed  *int64 `parquet:"self_employed,optional"`
	FamilyHistory *int64 `parquet:"family_history,optional"`
	Treatment     *int64 `parquet:"treatment,optional"`
	WorkInterfere string `parquet:"work_interfere"`
	NoEmployees   string `parquet:"no_employees"`
	RemoteWork    *int64 `parquet:"remote_work,optional"`
	TechCompany   *int64 `parquet:"tech_company,optional"`

	Benefits        *int64 `parquet:"benefits,optional"`
	CareOptions     *int64 `parquet:"care_options,optional"`
	WellnessProgram *int64 `parquet:"wellness_program,optional"`
	SeekHelp        *int64 `parquet:"seek_help,optional"`
	Anonymity       *int64 `parquet:"anonymity,optional"`
	Leave           string `parquet:"leave"`

	MentalHealthConsequence *int64 `parquet:"mental_health_consequence,optional"`
	PhysHealthConsequence   *int64 `parquet:"phys_health_consequence,optional"`
	Coworkers               *int64 `parquet:"coworkers,optional"`
	Supervisor              *int64 `parquet:"supervisor,optional"`
	MentalHealthInterview   *int64 `parquet:"mental_health_interview,optional"`
	PhysHealthInterview     *int64 `parquet:"phys_health_interview,optional"`
	MentalVsPhysical        *int64 `parquet:"mental_vs_physical,optional"`
	ObsConsequence          *int64 `parquet:"obs_consequence,optional"`
}

// YesNoFields returns pointers to the 18 yes/no fields keyed by column name,
// so the pipeline can fill them without a per-field switch.
func (r *Response) YesNoFields() map[string]**int64 {
	return map[string]**int64{
		ColSelfEmployed:            &r.SelfEmployed,
		ColFamilyHistory:           &r.FamilyHistory,
		ColTreatment:               &r.Treatment,
		ColRemoteWork:              &r.RemoteWork,
		ColTechCompany:             &r.TechCompany,
		ColBenefits:                &r.Benefits,
		ColCareOptions:             &r.CareOptions,
		ColWellnessProgram:         &r.WellnessProgram,
		ColSeekHelp:                &r.SeekHelp,
		ColAnonymity:               &r.Anonymity,
		ColMentalHealthConsequence: &r.MentalHealthConsequence,
		ColPhysHealthConsequence:   &r.PhysHealthConsequence,
		ColCoworkers:               &r.Coworkers,
		ColSupervisor:              &r.Supervisor,
		ColMentalHealthInterview:   &r.MentalHealthInterview,
		ColPhysHealthInterview:     &r.PhysHealthInterview,
		ColMentalVsPhysical:        &r.MentalVsPhysical,
		ColObsConsequence:          &r.ObsConsequence,
	}
}

// Values returns the row values in RequiredColumns order. Nullable integers
// stay *int64 so callers can choose their own null rendering.
func (r *Response) Values() []any {
	return []any{
		r.Age,
		r.Gender,
		r.Country,
		r.SelfEmployed,
		r.FamilyHistory,
		r.Treatment,
		r.WorkInterfere,
		r.NoEmployees,
		r.RemoteWork,
		r.TechCompany,
		r.Benefits,
		r.CareOptions,
		r.WellnessProgram,
		r.SeekHelp,
		r.Anonymity,
		r.Leave,
		r.MentalHealthConsequence,
		r.PhysHealthConsequence,
		r.Coworkers,
		r.Supervisor,
		r.MentalHealthInterview,
		r.PhysHealthInterview,
		r.MentalVsPhysical,
		r.ObsConsequence,
	}
}

// Strings renders the row in RequiredColumns order, writing null for absent
// integers.
func (r *Response) Strings(null string) []string {
	vals := r.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case string:
			out[i] = x
		case *int64:
			if x == nil {
				out[i] = null
			} else {
				out[i] = strconv.FormatInt(*x, 10)
			}
		}
	}
	return out
}

// ResponseColumns returns the column names for COPY into survey.responses,
// in the same order as CopyValues.
func ResponseColumns() []string {
	cols := []string{"load_batch_id", "source_row_number"}
	for _, c := range RequiredColumns {
		cols = append(cols, DBColumn(c))
	}
	return cols
}

// DBColumn maps a survey column to its lower-case database column name.
func DBColumn(name string) string {
	switch name {
	case ColAge:
		return "age"
	case ColGender:
		return "gender"
	case ColCountry:
		return "country"
	}
	return name
}
