package user

type Rol string

const (
	ADMIN   Rol = "ADMIN"
	TEACHER Rol = "TEACHER"
	STUDENT Rol = "STUDENT"
)

var AllRoles = []Rol{
	ADMIN,
	TEACHER,
	STUDENT,
}

func (r Rol) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
