package directory

import "context"

type State int

const (
	Idle State = iota
	InProgress
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InProgress:
		return "in_progress"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Style классификатор оформления области статуса
type Style int

const (
	StyleNone Style = iota
	StyleSuccess
	StyleFailure
)

// Status то, что показывается в области статуса конкретного сценария
type Status struct {
	State   State
	Title   string
	Message string
	Style   Style
}

func inProgress(msg string) Status {
	return Status{State: InProgress, Message: msg, Style: StyleNone}
}

func succeeded(msg string) Status {
	return Status{State: Succeeded, Message: msg, Style: StyleSuccess}
}

func failed(msg string) Status {
	return Status{State: Failed, Message: msg, Style: StyleFailure}
}

// IListView область со списком дикторов
type IListView interface {
	ShowLoading()
	ShowEmpty()
	ShowError()
	ShowSpeakers(names []string)
}

type IStatusView interface {
	SetStatus(s Status)
}

type IForm interface {
	Reset()
}

// INotifier блокирующее одноразовое уведомление
type INotifier interface {
	Notify(msg string)
}

type IConfirmer interface {
	Confirm(ctx context.Context, msg string) bool
}

// Regions явные ссылки на области, которыми владеют сценарии
type Regions struct {
	List         IListView
	EnrollStatus IStatusView
	EnrollForm   IForm
	VerifyResult IStatusView
	Notifier     INotifier
	Confirmer    IConfirmer
}
