package application

type SetCredentialsCommand struct {
	DevID   string
	AuthKey string
}
