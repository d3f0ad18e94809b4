package entity

// DoctorDirectoryFilter is a domain-level filter for the public
// "Find a Doctor" directory. Used by the repository layer to avoid
// coupling with delivery DTOs.
type DoctorDirectoryFilter struct {
	Name        string // substring match on the doctor's full name (ILIKE)
	SpecialtyID int    // exact specialty match, 0 = unrestricted
	Experience  string // bucket: "0-3", "4-7", "8+", "" = unrestricted
	Page        int    // 1-based, clamped by the usecase
}

// DirectoryPageSize is the fixed page size of the doctor directory.
const DirectoryPageSize = 8
