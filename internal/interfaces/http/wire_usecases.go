package http

import (
	specServices "cordwain/internal/application/specification/services"
	specUsecases "cordwain/internal/application/specification/usecases"
	ticketUsecases "cordwain/internal/application/ticket/usecases"
	"cordwain/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Ticket
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	changeStatusUC  *ticketUsecases.ChangeStatusUseCase
	deleteTicketUC  *ticketUsecases.DeleteTicketUseCase
	addCommentUC    *ticketUsecases.AddCommentUseCase
	deleteCommentUC *ticketUsecases.DeleteCommentUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase

	// Specification
	getSpecificationUC *specUsecases.GetSpecificationUseCase
	uploadMediaUC      *specUsecases.UploadMediaUseCase
	replaceMediaUC     *specUsecases.ReplaceMediaUseCase
	deleteMediaUC      *specUsecases.DeleteMediaUseCase
	setMediaStatusUC   *specUsecases.SetMediaStatusUseCase
	addAnnotationUC    *specUsecases.AddAnnotationUseCase
	deleteAnnotationUC *specUsecases.DeleteAnnotationUseCase
}

func (c *Container) initUseCases() {
	txMgr := db.NewTransactionManager(c.db)

	// Resolving a view status consults the open ticket count for that view.
	gatingSvc := specServices.NewGatingService(c.repos.ticketRepo)

	c.ucs = &allUseCases{
		createTicketUC:  ticketUsecases.NewCreateTicketUseCase(c.repos.ticketRepo, c.notifier, c.log),
		changeStatusUC:  ticketUsecases.NewChangeStatusUseCase(c.repos.ticketRepo, c.log),
		deleteTicketUC:  ticketUsecases.NewDeleteTicketUseCase(c.repos.ticketRepo, c.log),
		addCommentUC:    ticketUsecases.NewAddCommentUseCase(c.repos.ticketRepo, c.repos.commentRepo, txMgr, c.notifier, c.log),
		deleteCommentUC: ticketUsecases.NewDeleteCommentUseCase(c.repos.ticketRepo, c.repos.commentRepo, c.log),
		getTicketUC:     ticketUsecases.NewGetTicketUseCase(c.repos.ticketRepo, c.repos.commentRepo, c.log),
		listTicketsUC:   ticketUsecases.NewListTicketsUseCase(c.repos.ticketRepo, c.repos.commentRepo, c.log),

		getSpecificationUC: specUsecases.NewGetSpecificationUseCase(c.repos.specRepo, c.log),
		uploadMediaUC:      specUsecases.NewUploadMediaUseCase(c.repos.specRepo, c.mediaStore, c.log),
		replaceMediaUC:     specUsecases.NewReplaceMediaUseCase(c.repos.specRepo, c.mediaStore, c.log),
		deleteMediaUC:      specUsecases.NewDeleteMediaUseCase(c.repos.specRepo, c.log),
		setMediaStatusUC:   specUsecases.NewSetMediaStatusUseCase(c.repos.specRepo, gatingSvc, c.log),
		addAnnotationUC:    specUsecases.NewAddAnnotationUseCase(c.repos.specRepo, c.log),
		deleteAnnotationUC: specUsecases.NewDeleteAnnotationUseCase(c.repos.specRepo, c.log),
	}
}
