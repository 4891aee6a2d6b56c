package user

type User struct {
	ID       int    `db:"id" json:"id"`
	Realname string `db:"realname" json:"realname"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     Role   `db:"role" json:"role"`
}
