package enums

// CustomerType
// @Enum Individual, Company, Shelter
type CustomerType int

const (
	CustomerTypeIndividual CustomerType = 1
	CustomerTypeCompany    CustomerType = 2
	CustomerTypeShelter    CustomerType = 3
)

var CustomerTypes = define("CustomerType", map[CustomerType]string{
	CustomerTypeIndividual: "Individual",
	CustomerTypeCompany:    "Company",
	CustomerTypeShelter:    "Shelter",
})

func ParseCustomerType(s string) (CustomerType, error) { return CustomerTypes.Parse(s) }
func (t CustomerType) String() string                  { return CustomerTypes.Format(t) }

// CustomerStatus
// @Enum Active, Inactive, Overdue, InDebt, VIP
type CustomerStatus int

const (
	CustomerStatusActive   CustomerStatus = 1
	CustomerStatusInactive CustomerStatus = 2
	CustomerStatusOverdue  CustomerStatus = 3
	CustomerStatusInDebt   CustomerStatus = 4
	CustomerStatusVIP      CustomerStatus = 5
)

var CustomerStatuses = define("CustomerStatus", map[CustomerStatus]string{
	CustomerStatusActive:   "Active",
	CustomerStatusInactive: "Inactive",
	CustomerStatusOverdue:  "Overdue",
	CustomerStatusInDebt:   "InDebt",
	CustomerStatusVIP:      "VIP",
})

func ParseCustomerStatus(s string) (CustomerStatus, error) { return CustomerStatuses.Parse(s) }
func (s CustomerStatus) String() string                    { return CustomerStatuses.Format(s) }

// Gender
// @Enum Male, Female, Unknown
type Gender int

const (
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
	GenderUnknown Gender = 3
)

var Genders = define("Gender", map[Gender]string{
	GenderMale:    "Male",
	GenderFemale:  "Female",
	GenderUnknown: "Unknown",
})

func ParseGender(s string) (Gender, error) { return Genders.Parse(s) }
func (g Gender) String() string            { return Genders.Format(g) }

// Classification del paciente.
// @Enum Domestic, Exotic, Farm, Wild
type Classification int

const (
	ClassificationDomestic Classification = 1
	ClassificationExotic   Classification = 2
	ClassificationFarm     Classification = 3
	ClassificationWild     Classification = 4
)

var Classifications = define("Classification", map[Classification]string{
	ClassificationDomestic: "Domestic",
	ClassificationExotic:   "Exotic",
	ClassificationFarm:     "Farm",
	ClassificationWild:     "Wild",
})

func ParseClassification(s string) (Classification, error) { return Classifications.Parse(s) }
func (c Classification) String() string                    { return Classifications.Format(c) }

// TreatmentType
// @Enum Preventive, Curative, Surgical, Palliative, Rehabilitation
type TreatmentType int

const (
	TreatmentTypePreventive     TreatmentType = 1
	TreatmentTypeCurative       TreatmentType = 2
	TreatmentTypeSurgical       TreatmentType = 3
	TreatmentTypePalliative     TreatmentType = 4
	TreatmentTypeRehabilitation TreatmentType = 5
)

var TreatmentTypes = define("TreatmentType", map[TreatmentType]string{
	TreatmentTypePreventive:     "Preventive",
	TreatmentTypeCurative:       "Curative",
	TreatmentTypeSurgical:       "Surgical",
	TreatmentTypePalliative:     "Palliative",
	TreatmentTypeRehabilitation: "Rehabilitation",
})

func ParseTreatmentType(s string) (TreatmentType, error) { return TreatmentTypes.Parse(s) }
func (t TreatmentType) String() string                   { return TreatmentTypes.Format(t) }

// TreatmentStatus
// @Enum Planned, InProgress, Completed, Suspended, Cancelled
type TreatmentStatus int

const (
	TreatmentStatusPlanned    TreatmentStatus = 1
	TreatmentStatusInProgress TreatmentStatus = 2
	TreatmentStatusCompleted  TreatmentStatus = 3
	TreatmentStatusSuspended  TreatmentStatus = 4
	TreatmentStatusCancelled  TreatmentStatus = 5
)

var TreatmentStatuses = define("TreatmentStatus", map[TreatmentStatus]string{
	TreatmentStatusPlanned:    "Planned",
	TreatmentStatusInProgress: "InProgress",
	TreatmentStatusCompleted:  "Completed",
	TreatmentStatusSuspended:  "Suspended",
	TreatmentStatusCancelled:  "Cancelled",
})

func ParseTreatmentStatus(s string) (TreatmentStatus, error) { return TreatmentStatuses.Parse(s) }
func (s TreatmentStatus) String() string                     { return TreatmentStatuses.Format(s) }

// PrescriptionStatus
// @Enum Active, Suspended, Completed, Cancelled
type PrescriptionStatus int

const (
	PrescriptionStatusActive    PrescriptionStatus = 1
	PrescriptionStatusSuspended PrescriptionStatus = 2
	PrescriptionStatusCompleted PrescriptionStatus = 3
	PrescriptionStatusCancelled PrescriptionStatus = 4
)

var PrescriptionStatuses = define("PrescriptionStatus", map[PrescriptionStatus]string{
	PrescriptionStatusActive:    "Active",
	PrescriptionStatusSuspended: "Suspended",
	PrescriptionStatusCompleted: "Completed",
	PrescriptionStatusCancelled: "Cancelled",
})

func ParsePrescriptionStatus(s string) (PrescriptionStatus, error) {
	return PrescriptionStatuses.Parse(s)
}
func (s PrescriptionStatus) String() string { return PrescriptionStatuses.Format(s) }
