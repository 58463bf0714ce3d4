package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/reservations/models"
	addShift "github.com/m04kA/SMC-ReservationEngine/internal/usecase/add_shift"
	confirmReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/confirm_reservation"
	createReservation "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_reservation"
	getAvailableSlots "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
)

func newShiftCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage provider shifts",
	}
	cmd.AddCommand(newShiftAddCmd(configPath))
	cmd.AddCommand(newShiftListCmd(configPath))
	return cmd
}

func newShiftAddCmd(configPath *string) *cobra.Command {
	var providerID, date, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a shift for a provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftDate, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q, expected MM/dd/yyyy", date)
			}

			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.engine.AddShift(cmd.Context(), &addShift.Request{
				ProviderID: providerID,
				Date:       shiftDate,
				StartTime:  start,
				EndTime:    end,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "provider id")
	cmd.Flags().StringVar(&date, "date", "", "shift date, MM/dd/yyyy")
	cmd.Flags().StringVar(&start, "start", "", "start time, hh:mm AM/PM")
	cmd.Flags().StringVar(&end, "end", "", "end time, hh:mm AM/PM")
	for _, name := range []string{"provider", "date", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newShiftListCmd(configPath *string) *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shifts ordered by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.engine.ListShifts(cmd.Context(), providerID)
			if err != nil {
				return err
			}

			for _, shift := range resp.Shifts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s - %s %s\n", shift.Date, shift.StartTime, shift.EndTime, shift.ProviderID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "only shifts of this provider")
	return cmd
}

func newSlotsCmd(configPath *string) *cobra.Command {
	var providerID, date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show bookable slots grouped by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.engine.AvailableSlots(cmd.Context(), &getAvailableSlots.Request{
				ProviderID: providerID,
				Date:       date,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, group := range resp.Groups {
				fmt.Fprintln(out, group.Date)
				for _, slot := range group.Slots {
					fmt.Fprintf(out, "  %s %s\n", slot.Time, slot.ProviderID)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "only slots of this provider")
	cmd.Flags().StringVar(&date, "date", "", "only slots on this date, MM/dd/yyyy")
	return cmd
}

func newReserveCmd(configPath *string) *cobra.Command {
	var providerID, date, slotTime string

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Reserve a slot for this installation's client",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.engine.CreateReservation(cmd.Context(), &createReservation.Request{
				Date:       date,
				Time:       slotTime,
				ProviderID: providerID,
			})
			if err != nil {
				return err
			}

			r := resp.Reservation
			fmt.Fprintf(cmd.OutOrStdout(), "Reserved %s %s with %s, confirm within %d minutes\n",
				r.Date, r.Time, r.ProviderID, a.engine.Settings().HoldPeriodMinutes)
			return nil
		},
	}

	slotFlags(cmd, &providerID, &date, &slotTime)
	return cmd
}

func newConfirmCmd(configPath *string) *cobra.Command {
	var providerID, date, slotTime string

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Confirm a pending reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.engine.ConfirmReservation(cmd.Context(), &confirmReservation.Request{
				Date:       date,
				Time:       slotTime,
				ProviderID: providerID,
			})
			if err != nil {
				return err
			}

			// не найдено: ничего не выводим
			if resp.Outcome != confirmReservation.OutcomeNotFound {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			}
			return nil
		},
	}

	slotFlags(cmd, &providerID, &date, &slotTime)
	return cmd
}

func newReservationsCmd(configPath *string) *cobra.Command {
	var providerID string
	var confirmedOnly bool

	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List reservations of this installation's client",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			req := &models.GetClientReservationsRequest{ConfirmedOnly: confirmedOnly}
			if providerID != "" {
				req.ProviderID = &providerID
			}

			resp, err := a.engine.ListReservations(cmd.Context(), req)
			if err != nil {
				return err
			}

			for _, r := range resp.Reservations {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", r.Date, r.Time, r.ProviderID, r.State)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "only reservations with this provider")
	cmd.Flags().BoolVar(&confirmedOnly, "confirmed-only", false, "only confirmed reservations")
	return cmd
}

func slotFlags(cmd *cobra.Command, providerID, date, slotTime *string) {
	cmd.Flags().StringVar(providerID, "provider", "", "provider id")
	cmd.Flags().StringVar(date, "date", "", "slot date, MM/dd/yyyy")
	cmd.Flags().StringVar(slotTime, "time", "", "slot time, hh:mm AM/PM")
	for _, name := range []string{"provider", "date", "time"} {
		_ = cmd.MarkFlagRequired(name)
	}
}
