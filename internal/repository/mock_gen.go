// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./meeting.go -destination=../mocks/mock_meeting_repository.go -package=mocks MeetingRepositoryIface
//go:generate mockgen -source=./room.go -destination=../mocks/mock_room_repository.go -package=mocks RoomRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
